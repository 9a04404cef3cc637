package pricing

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// Evaluate calcula la ganancia neta y el margen de un canal (función pura).
//
// Composición aditiva de costos, nunca compuesta: las tasas porcentuales sobre
// precio se suman planas y se multiplican UNA sola vez por el precio de venta
// sin descontar, de modo que ningún fee porcentual se aplica sobre otro. Esto
// mantiene el estado de resultados auditable para el vendedor:
//
//	taxCost        = BaseCost * TaxPercent/100
//	costoUnitario  = BaseCost + taxCost
//	costosPct      = SalePrice * Σ(tasas % declaradas para la variante)/100
//	costosAbs      = Σ(montos absolutos declarados para la variante)
//	NetProfit      = SalePrice - costoUnitario - costosPct - costosAbs
//	Margen         = SalePrice == 0 ? 0 : NetProfit/SalePrice * 100
//
// El registro de fees decide qué campos participan: un campo no declarado para
// la variante aporta 0 aunque esté poblado en el struct. La aritmética intermedia
// es a precisión completa; solo los valores del Calculation retornado se
// redondean (2 decimales, banker's rounding), una única vez en la frontera.
//
// El evaluador asume entrada pre-validada (rangos verificados por el caller) y
// no hace clamping: recortar en silencio ocultaría errores de captura que
// afectan directamente la ganancia mostrada. Evaluar un canal deshabilitado es
// válido; es el caller quien decide no exponer ese resultado.
func Evaluate(basis CostBasis, cfg ChannelConfig) (Calculation, error) {
	fields, err := FieldsFor(cfg.ChannelType)
	if err != nil {
		return Calculation{}, err
	}

	taxCost := basis.BaseCost.Mul(basis.TaxPercent).Div(oneHundred)
	unitCost := basis.BaseCost.Add(taxCost)

	// Tasas porcentuales sumadas planas; montos absolutos acumulados aparte.
	// Los costos unitarios adicionales de variante (FBA, ML Full) son montos
	// absolutos que se suman al costo, nunca reemplazan BaseCost.
	rateSum := decimal.Zero
	absSum := decimal.Zero
	for _, f := range fields {
		switch f.Kind {
		case PercentOfPrice:
			rateSum = rateSum.Add(fieldValue(cfg, f.Name))
		case AbsoluteCurrency:
			absSum = absSum.Add(fieldValue(cfg, f.Name))
		}
		// OpaquePassthrough no participa en la aritmética.
	}

	percentCosts := cfg.SalePrice.Mul(rateSum).Div(oneHundred)
	netProfit := cfg.SalePrice.Sub(unitCost).Sub(percentCosts).Sub(absSum)

	margin := decimal.Zero
	if !cfg.SalePrice.IsZero() {
		margin = netProfit.Div(cfg.SalePrice).Mul(oneHundred)
	}

	netRounded := netProfit.RoundBank(2)
	return Calculation{
		ChannelType:         cfg.ChannelType,
		SalePrice:           cfg.SalePrice.RoundBank(2),
		NetProfit:           netRounded,
		ProfitMarginPercent: margin.RoundBank(2),
		IsProfitable:        netRounded.IsPositive(),
	}, nil
}

// fieldValue lee el valor numérico de un campo de fee por su nombre canónico.
// Solo se invoca para campos que el registro declaró para la variante.
func fieldValue(cfg ChannelConfig, name string) decimal.Decimal {
	switch name {
	case FieldCommissionPercent:
		return cfg.CommissionPercent
	case FieldShippingCost:
		return cfg.ShippingCost
	case FieldOtherCostValue:
		return cfg.OtherCostValue
	case FieldFixedCostPercent:
		return cfg.FixedCostPercent
	case FieldOtherCostPercent:
		return cfg.OtherCostPercent
	case FieldPackagingCostValue:
		return cfg.PackagingCostValue
	case FieldFinancialCostPercent:
		return cfg.FinancialCostPercent
	case FieldMarketingCostPercent:
		return cfg.MarketingCostPercent
	case FieldRebateValue:
		return cfg.RebateValue
	case FieldRebatePercent:
		return cfg.RebatePercent
	case FieldTacosCostPercent:
		return cfg.TacosCostPercent
	case FieldInstallmentPercent:
		return cfg.InstallmentPercent
	case FieldProductCostFBA:
		return cfg.ProductCostFBA
	case FieldProductCostMLFull:
		return cfg.ProductCostMLFull
	default:
		return decimal.Zero
	}
}
