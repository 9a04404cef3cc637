package pricing_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Multicanal-api/internal/domain/pricing"
)

func TestFieldsFor_CanalDesconocido(t *testing.T) {
	_, err := pricing.FieldsFor("EBAY")
	require.Error(t, err, "un canal fuera del enum debe fallar rápido")
	assert.True(t, errors.Is(err, pricing.ErrUnknownChannelType))
}

// TestFieldsFor_ComunesPrimero: el orden es estable — campos comunes y luego los
// de la variante.
func TestFieldsFor_ComunesPrimero(t *testing.T) {
	fields, err := pricing.FieldsFor(pricing.ChannelSiteProprio)
	require.NoError(t, err)
	require.Len(t, fields, 9, "SITE_PROPRIO: 6 comunes + 3 de variante")

	assert.Equal(t, pricing.FieldCommissionPercent, fields[0].Name)
	assert.Equal(t, pricing.PercentOfPrice, fields[0].Kind)
	assert.Equal(t, pricing.FieldMarketingCostPercent, fields[8].Name)
}

func TestFieldsFor_VarianteSinExtras(t *testing.T) {
	fields, err := pricing.FieldsFor(pricing.ChannelShopee)
	require.NoError(t, err)
	assert.Len(t, fields, 6, "SHOPEE solo lleva los campos comunes")
}

func TestFieldsFor_AmazonFBAOnsite(t *testing.T) {
	fields, err := pricing.FieldsFor(pricing.ChannelAmazonFBAOnsite)
	require.NoError(t, err)
	require.Len(t, fields, 11, "AMAZON_FBA_ONSITE: 6 comunes + 5 de variante")

	kinds := map[string]pricing.FieldKind{}
	for _, f := range fields {
		kinds[f.Name] = f.Kind
	}
	assert.Equal(t, pricing.AbsoluteCurrency, kinds[pricing.FieldRebateValue])
	assert.Equal(t, pricing.PercentOfPrice, kinds[pricing.FieldRebatePercent])
	assert.Equal(t, pricing.PercentOfPrice, kinds[pricing.FieldInstallmentPercent])
	assert.Equal(t, pricing.AbsoluteCurrency, kinds[pricing.FieldPackagingCostValue])
}

// TestFieldsFor_ProductCodeEsOpaco: el código de producto nunca participa en la
// aritmética.
func TestFieldsFor_ProductCodeEsOpaco(t *testing.T) {
	for _, tipo := range pricing.KnownChannelTypes() {
		fields, err := pricing.FieldsFor(tipo)
		require.NoError(t, err, "todo canal del enum debe estar registrado: %s", tipo)
		found := false
		for _, f := range fields {
			if f.Name == pricing.FieldProductCode {
				found = true
				assert.Equal(t, pricing.OpaquePassthrough, f.Kind)
			}
		}
		assert.True(t, found, "%s debe declarar product_code", tipo)
	}
}

func TestCostBasisFields_TaxEsPorcentajeDelCosto(t *testing.T) {
	fields := pricing.CostBasisFields()
	require.Len(t, fields, 2)
	assert.Equal(t, pricing.AbsoluteCurrency, fields[0].Kind)
	assert.Equal(t, pricing.PercentOfCost, fields[1].Kind,
		"el impuesto del producto se aplica sobre el costo, no sobre el precio")
}

func TestParseChannelType(t *testing.T) {
	tipo, err := pricing.ParseChannelType("ML_FULL")
	require.NoError(t, err)
	assert.Equal(t, pricing.ChannelMLFull, tipo)

	_, err = pricing.ParseChannelType("ml_full")
	assert.Error(t, err, "el parseo es estricto, sin normalización de mayúsculas")
}
