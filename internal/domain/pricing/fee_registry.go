package pricing

import (
	"errors"
	"fmt"
)

// ErrUnknownChannelType: el registro no reconoce el tipo de canal. Error de
// configuración fatal para la operación — nunca se cae a un modelo de fees por
// defecto, porque eso cotizaría mal un canal sin ninguna señal visible.
var ErrUnknownChannelType = errors.New("tipo de canal desconocido")

// FieldKind es la semántica de un campo de fee dentro de la fórmula.
type FieldKind int

const (
	// PercentOfPrice: tasa en [0,100] aplicada sobre SalePrice.
	PercentOfPrice FieldKind = iota
	// PercentOfCost: tasa en [0,100] aplicada sobre el costo base (solo TaxPercent).
	PercentOfCost
	// AbsoluteCurrency: monto absoluto en moneda.
	AbsoluteCurrency
	// OpaquePassthrough: identificador que no participa en la aritmética.
	OpaquePassthrough
)

// String devuelve el nombre legible del kind.
func (k FieldKind) String() string {
	switch k {
	case PercentOfPrice:
		return "percent_of_price"
	case PercentOfCost:
		return "percent_of_cost"
	case AbsoluteCurrency:
		return "absolute_currency"
	case OpaquePassthrough:
		return "opaque_passthrough"
	default:
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
}

// FieldSpec declara un campo de fee aplicable a un canal. DefaultValue es siempre
// 0/ausente: un campo no provisto por la variante se trata como exactamente 0.
type FieldSpec struct {
	Name string
	Kind FieldKind
}

// Nombres canónicos de los campos de fee (coinciden con los tags JSON de los DTOs).
const (
	FieldCommissionPercent    = "commission_percent"
	FieldShippingCost         = "shipping_cost"
	FieldOtherCostValue       = "other_cost_value"
	FieldFixedCostPercent     = "fixed_cost_percent"
	FieldOtherCostPercent     = "other_cost_percent"
	FieldProductCode          = "product_code"
	FieldPackagingCostValue   = "packaging_cost_value"
	FieldFinancialCostPercent = "financial_cost_percent"
	FieldMarketingCostPercent = "marketing_cost_percent"
	FieldRebateValue          = "rebate_value"
	FieldRebatePercent        = "rebate_percent"
	FieldTacosCostPercent     = "tacos_cost_percent"
	FieldInstallmentPercent   = "installment_percent"
	FieldProductCostFBA       = "product_cost_fba"
	FieldProductCostMLFull    = "product_cost_ml_full"
	FieldBaseCost             = "base_cost"
	FieldTaxPercent           = "tax_percent"
)

// commonFields aplica a todas las variantes, en este orden.
var commonFields = []FieldSpec{
	{Name: FieldCommissionPercent, Kind: PercentOfPrice},
	{Name: FieldShippingCost, Kind: AbsoluteCurrency},
	{Name: FieldOtherCostValue, Kind: AbsoluteCurrency},
	{Name: FieldFixedCostPercent, Kind: PercentOfPrice},
	{Name: FieldOtherCostPercent, Kind: PercentOfPrice},
	{Name: FieldProductCode, Kind: OpaquePassthrough},
}

// variantFields declara los campos adicionales de cada variante. Las variantes
// ausentes del mapa solo llevan los campos comunes.
var variantFields = map[ChannelType][]FieldSpec{
	ChannelSiteProprio: {
		{Name: FieldPackagingCostValue, Kind: AbsoluteCurrency},
		{Name: FieldFinancialCostPercent, Kind: PercentOfPrice},
		{Name: FieldMarketingCostPercent, Kind: PercentOfPrice},
	},
	ChannelAmazonFBAOnsite: {
		{Name: FieldRebateValue, Kind: AbsoluteCurrency},
		{Name: FieldRebatePercent, Kind: PercentOfPrice},
		{Name: FieldTacosCostPercent, Kind: PercentOfPrice},
		{Name: FieldInstallmentPercent, Kind: PercentOfPrice},
		{Name: FieldPackagingCostValue, Kind: AbsoluteCurrency},
	},
	ChannelAmazonFBA: {
		{Name: FieldProductCostFBA, Kind: AbsoluteCurrency},
	},
	ChannelMLFull: {
		{Name: FieldTacosCostPercent, Kind: PercentOfPrice},
		{Name: FieldProductCostMLFull, Kind: AbsoluteCurrency},
	},
	// Solo campos comunes:
	ChannelAmazonFBM:        nil,
	ChannelAmazonDBA:        nil,
	ChannelMLME1:            nil,
	ChannelMLFlex:           nil,
	ChannelMLEnvios:         nil,
	ChannelShopee:           nil,
	ChannelMarketplaceOther: nil,
}

// FieldsFor devuelve la lista ordenada de campos de fee aplicables al canal
// (comunes primero, luego los de la variante). Tipo desconocido retorna
// ErrUnknownChannelType: fallar rápido, nunca un fee set por defecto.
func FieldsFor(t ChannelType) ([]FieldSpec, error) {
	extra, ok := variantFields[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannelType, string(t))
	}
	fields := make([]FieldSpec, 0, len(commonFields)+len(extra))
	fields = append(fields, commonFields...)
	fields = append(fields, extra...)
	return fields, nil
}

// CostBasisFields describe los campos del lado costo (informativo, para
// consumidores que arman formularios o reportes a partir del registro).
func CostBasisFields() []FieldSpec {
	return []FieldSpec{
		{Name: FieldBaseCost, Kind: AbsoluteCurrency},
		{Name: FieldTaxPercent, Kind: PercentOfCost},
	}
}

// KnownChannelTypes devuelve los tipos de canal registrados en orden estable.
func KnownChannelTypes() []ChannelType {
	return []ChannelType{
		ChannelSiteProprio,
		ChannelAmazonFBM,
		ChannelAmazonFBA,
		ChannelAmazonFBAOnsite,
		ChannelAmazonDBA,
		ChannelMLME1,
		ChannelMLFlex,
		ChannelMLEnvios,
		ChannelMLFull,
		ChannelShopee,
		ChannelMarketplaceOther,
	}
}

// ParseChannelType valida un string contra el enum de canales.
func ParseChannelType(s string) (ChannelType, error) {
	t := ChannelType(s)
	if _, ok := variantFields[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownChannelType, s)
	}
	return t, nil
}
