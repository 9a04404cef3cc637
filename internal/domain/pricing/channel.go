// Package pricing: motor de cálculo de rentabilidad multicanal.
// Dado el costo de un producto y la configuración de fees de cada canal de venta,
// calcula la ganancia neta y el margen por canal, y los consolida a nivel portafolio.

package pricing

import "github.com/shopspring/decimal"

// ChannelType identifica un canal de venta soportado (enum cerrado).
type ChannelType string

// Canales soportados. Cada uno tiene su propio modelo de fees en el registro.
const (
	ChannelSiteProprio      ChannelType = "SITE_PROPRIO"
	ChannelAmazonFBM        ChannelType = "AMAZON_FBM"
	ChannelAmazonFBA        ChannelType = "AMAZON_FBA"
	ChannelAmazonFBAOnsite  ChannelType = "AMAZON_FBA_ONSITE"
	ChannelAmazonDBA        ChannelType = "AMAZON_DBA"
	ChannelMLME1            ChannelType = "ML_ME1"
	ChannelMLFlex           ChannelType = "ML_FLEX"
	ChannelMLEnvios         ChannelType = "ML_ENVIOS"
	ChannelMLFull           ChannelType = "ML_FULL"
	ChannelShopee           ChannelType = "SHOPEE"
	ChannelMarketplaceOther ChannelType = "MARKETPLACE_OTHER"
)

// String devuelve el identificador del canal.
func (t ChannelType) String() string { return string(t) }

// CostBasis es el lado costo del cálculo: costo unitario del producto más su
// tasa de impuesto (aplicada uniformemente en todos los canales).
// Inmutable durante una llamada de cálculo; el motor nunca lo modifica.
type CostBasis struct {
	BaseCost   decimal.Decimal // costo unitario de adquisición/producción (>= 0)
	TaxPercent decimal.Decimal // impuesto del producto en [0,100], porcentaje sobre BaseCost
}

// ChannelConfig es la configuración de un canal de venta. El struct lleva todos
// los campos posibles; el registro de fees (fee_registry.go) es la única autoridad
// sobre cuáles participan en la fórmula para cada ChannelType. Un campo no
// declarado para el canal aporta exactamente 0 aunque esté poblado.
type ChannelConfig struct {
	ChannelType ChannelType
	Enabled     bool // canales deshabilitados quedan fuera de todo agregado

	SalePrice decimal.Decimal // precio de venta en el canal (>= 0)

	// Campos comunes a todos los canales.
	CommissionPercent decimal.Decimal // % sobre SalePrice
	ShippingCost      decimal.Decimal // monto absoluto
	OtherCostValue    decimal.Decimal // monto absoluto
	FixedCostPercent  decimal.Decimal // % sobre SalePrice
	OtherCostPercent  decimal.Decimal // % sobre SalePrice

	// Campos específicos por variante (0 cuando el canal no los declara).
	PackagingCostValue   decimal.Decimal // SITE_PROPRIO, AMAZON_FBA_ONSITE
	FinancialCostPercent decimal.Decimal // SITE_PROPRIO
	MarketingCostPercent decimal.Decimal // SITE_PROPRIO
	RebateValue          decimal.Decimal // AMAZON_FBA_ONSITE (se descuenta de la ganancia)
	RebatePercent        decimal.Decimal // AMAZON_FBA_ONSITE
	TacosCostPercent     decimal.Decimal // AMAZON_FBA_ONSITE, ML_FULL (publicidad)
	InstallmentPercent   decimal.Decimal // AMAZON_FBA_ONSITE
	ProductCostFBA       decimal.Decimal // AMAZON_FBA: costo unitario adicional de logística FBA
	ProductCostMLFull    decimal.Decimal // ML_FULL: costo unitario adicional

	ProductCode string // identificador opaco del canal (SKU de marketplace); no entra al cálculo
}

// Calculation es el resultado del evaluador para un canal (registro de solo lectura).
// Los montos y porcentajes ya vienen redondeados a 2 decimales (banker's rounding);
// toda la aritmética intermedia se hace a precisión completa.
type Calculation struct {
	ChannelType         ChannelType
	SalePrice           decimal.Decimal
	NetProfit           decimal.Decimal // con signo: negativo = pérdida
	ProfitMarginPercent decimal.Decimal // NetProfit / SalePrice * 100; 0 si SalePrice == 0
	IsProfitable        bool            // NetProfit > 0 estricto: empatar en 0.00 NO es rentable
}

// Summary consolida los resultados de todos los canales habilitados de un producto.
type Summary struct {
	ProfitableChannelCount int
	AverageMarginPercent   decimal.Decimal // media aritmética sobre canales habilitados (incluye pérdidas)
	BestChannel            *Calculation    // nil si no hay canales habilitados
	WorstChannel           *Calculation    // nil si no hay canales habilitados
	TotalPotentialProfit   decimal.Decimal // suma de max(0, NetProfit); las pérdidas no restan
	Health                 HealthCategory
}
