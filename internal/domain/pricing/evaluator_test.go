package pricing_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Multicanal-api/internal/domain/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios de referencia del evaluador, calculados a mano:
//
// Base: baseCost=50, taxPercent=10 → costo unitario efectivo = 55.
//
// SITE_PROPRIO  precio=150, fixedCost=5%, envío=10, empaque=5
//   costosPct = 150*0.05 = 7.50 ; costosAbs = 10+5 = 15
//   neto = 150 - 55 - 7.50 - 15 = 72.50 ; margen = 48.33% ; rentable
//
// AMAZON_FBA  precio=80, comisión=15%, envío=8, costoFBA=20
//   costo unitario = 55+20 = 75 ; costosPct = 80*0.15 = 12 ; costosAbs = 8
//   neto = 80 - 75 - 12 - 8 = -15 ; margen = -18.75% ; NO rentable
// ──────────────────────────────────────────────────────────────────────────────

func testBasis() pricing.CostBasis {
	return pricing.CostBasis{
		BaseCost:   decimal.NewFromInt(50),
		TaxPercent: decimal.NewFromInt(10),
	}
}

func siteProprioConfig() pricing.ChannelConfig {
	return pricing.ChannelConfig{
		ChannelType:        pricing.ChannelSiteProprio,
		Enabled:            true,
		SalePrice:          decimal.NewFromInt(150),
		FixedCostPercent:   decimal.NewFromInt(5),
		ShippingCost:       decimal.NewFromInt(10),
		PackagingCostValue: decimal.NewFromInt(5),
	}
}

func amazonFBAConfig() pricing.ChannelConfig {
	return pricing.ChannelConfig{
		ChannelType:       pricing.ChannelAmazonFBA,
		Enabled:           true,
		SalePrice:         decimal.NewFromInt(80),
		CommissionPercent: decimal.NewFromInt(15),
		ShippingCost:      decimal.NewFromInt(8),
		ProductCostFBA:    decimal.NewFromInt(20),
	}
}

func TestEvaluate_SiteProprio_EscenarioReferencia(t *testing.T) {
	calc, err := pricing.Evaluate(testBasis(), siteProprioConfig())
	require.NoError(t, err)

	assert.Equal(t, pricing.ChannelSiteProprio, calc.ChannelType)
	assert.True(t, calc.NetProfit.Equal(decimal.RequireFromString("72.5")),
		"neto esperado 72.50, obtenido %s", calc.NetProfit)
	assert.True(t, calc.ProfitMarginPercent.Equal(decimal.RequireFromString("48.33")),
		"margen esperado 48.33, obtenido %s", calc.ProfitMarginPercent)
	assert.True(t, calc.IsProfitable, "72.50 de ganancia debe marcar el canal como rentable")
}

func TestEvaluate_AmazonFBA_PerdidaConSigno(t *testing.T) {
	calc, err := pricing.Evaluate(testBasis(), amazonFBAConfig())
	require.NoError(t, err)

	assert.True(t, calc.NetProfit.Equal(decimal.RequireFromString("-15")),
		"neto esperado -15.00, obtenido %s", calc.NetProfit)
	assert.True(t, calc.ProfitMarginPercent.Equal(decimal.RequireFromString("-18.75")),
		"margen esperado -18.75, obtenido %s", calc.ProfitMarginPercent)
	assert.False(t, calc.IsProfitable, "una pérdida nunca es rentable")
}

// TestEvaluate_PrecioCero verifica que margen con precio 0 es 0, nunca NaN ni
// propagación de división por cero.
func TestEvaluate_PrecioCero(t *testing.T) {
	cfg := siteProprioConfig()
	cfg.SalePrice = decimal.Zero

	calc, err := pricing.Evaluate(testBasis(), cfg)
	require.NoError(t, err)

	assert.True(t, calc.ProfitMarginPercent.IsZero(),
		"con precio 0 el margen se define como 0, obtenido %s", calc.ProfitMarginPercent)
	assert.True(t, calc.NetProfit.IsNegative(), "con precio 0 solo quedan costos")
	assert.False(t, calc.IsProfitable)
}

// TestEvaluate_PuntoDeEquilibrio: neto exactamente 0.00 NO es rentable (estricto).
func TestEvaluate_PuntoDeEquilibrio(t *testing.T) {
	basis := pricing.CostBasis{BaseCost: decimal.NewFromInt(50), TaxPercent: decimal.Zero}
	cfg := pricing.ChannelConfig{
		ChannelType: pricing.ChannelShopee,
		Enabled:     true,
		SalePrice:   decimal.NewFromInt(50),
	}

	calc, err := pricing.Evaluate(basis, cfg)
	require.NoError(t, err)

	assert.True(t, calc.NetProfit.IsZero())
	assert.False(t, calc.IsProfitable, "empatar en 0.00 no cuenta como rentable")
}

// TestEvaluate_Idempotente: mismo input, output idéntico bit a bit (sin estado
// oculto ni dependencia del tiempo).
func TestEvaluate_Idempotente(t *testing.T) {
	c1, err1 := pricing.Evaluate(testBasis(), amazonFBAConfig())
	c2, err2 := pricing.Evaluate(testBasis(), amazonFBAConfig())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, c1, c2, "dos evaluaciones idénticas deben producir el mismo resultado")
}

// TestEvaluate_CampoNoDeclaradoAporta0: un campo poblado que la variante no
// declara no entra a la fórmula. SHOPEE no declara tacos ni costo FBA.
func TestEvaluate_CampoNoDeclaradoAporta0(t *testing.T) {
	basis := pricing.CostBasis{BaseCost: decimal.NewFromInt(10), TaxPercent: decimal.Zero}
	cfg := pricing.ChannelConfig{
		ChannelType:      pricing.ChannelShopee,
		Enabled:          true,
		SalePrice:        decimal.NewFromInt(100),
		TacosCostPercent: decimal.NewFromInt(50), // no aplica a SHOPEE
		ProductCostFBA:   decimal.NewFromInt(99), // no aplica a SHOPEE
	}

	calc, err := pricing.Evaluate(basis, cfg)
	require.NoError(t, err)

	assert.True(t, calc.NetProfit.Equal(decimal.NewFromInt(90)),
		"los campos no declarados deben aportar exactamente 0, neto obtenido %s", calc.NetProfit)
}

// TestEvaluate_TasasSumadasPlanas: las tasas porcentuales se suman antes de
// multiplicar una sola vez por el precio, sin componer una sobre otra.
func TestEvaluate_TasasSumadasPlanas(t *testing.T) {
	basis := pricing.CostBasis{BaseCost: decimal.Zero, TaxPercent: decimal.Zero}
	cfg := pricing.ChannelConfig{
		ChannelType:          pricing.ChannelSiteProprio,
		Enabled:              true,
		SalePrice:            decimal.NewFromInt(100),
		CommissionPercent:    decimal.NewFromInt(10),
		FixedCostPercent:     decimal.NewFromInt(10),
		FinancialCostPercent: decimal.NewFromInt(10),
		MarketingCostPercent: decimal.NewFromInt(10),
	}

	calc, err := pricing.Evaluate(basis, cfg)
	require.NoError(t, err)

	// Suma plana: 100 - 100*0.40 = 60. Compuesto daría 100*0.9^4 ≈ 65.61.
	assert.True(t, calc.NetProfit.Equal(decimal.NewFromInt(60)),
		"las tasas deben sumarse planas (esperado 60, obtenido %s)", calc.NetProfit)
}

// TestEvaluate_RedondeoBancarioEnFrontera: solo el resultado se redondea, a 2
// decimales half-to-even.
func TestEvaluate_RedondeoBancarioEnFrontera(t *testing.T) {
	basis := pricing.CostBasis{BaseCost: decimal.RequireFromString("9.875"), TaxPercent: decimal.Zero}
	cfg := pricing.ChannelConfig{
		ChannelType: pricing.ChannelShopee,
		Enabled:     true,
		SalePrice:   decimal.NewFromInt(10),
	}

	calc, err := pricing.Evaluate(basis, cfg)
	require.NoError(t, err)

	// 0.125 → 0.12 (half-to-even), no 0.13.
	assert.Equal(t, "0.12", calc.NetProfit.StringFixed(2),
		"0.125 debe redondear a 0.12 con banker's rounding")
}

func TestEvaluate_CanalDesconocido(t *testing.T) {
	cfg := pricing.ChannelConfig{ChannelType: "EBAY", Enabled: true}

	_, err := pricing.Evaluate(testBasis(), cfg)
	require.Error(t, err, "un canal fuera del registro debe fallar, nunca usar fees por defecto")
	assert.True(t, errors.Is(err, pricing.ErrUnknownChannelType))
}

// TestEvaluate_RebateSeDescuentaComoCosto: en AMAZON_FBA_ONSITE el rebate (monto
// y tasa) se deduce de la ganancia.
func TestEvaluate_RebateSeDescuentaComoCosto(t *testing.T) {
	basis := pricing.CostBasis{BaseCost: decimal.NewFromInt(10), TaxPercent: decimal.Zero}
	cfg := pricing.ChannelConfig{
		ChannelType:   pricing.ChannelAmazonFBAOnsite,
		Enabled:       true,
		SalePrice:     decimal.NewFromInt(100),
		RebateValue:   decimal.NewFromInt(5),
		RebatePercent: decimal.NewFromInt(2),
	}

	calc, err := pricing.Evaluate(basis, cfg)
	require.NoError(t, err)

	// 100 - 10 - 100*0.02 - 5 = 83
	assert.True(t, calc.NetProfit.Equal(decimal.NewFromInt(83)),
		"rebate esperado como deducción (esperado 83, obtenido %s)", calc.NetProfit)
}
