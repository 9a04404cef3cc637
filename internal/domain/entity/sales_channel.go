package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesChannel es la configuración persistida de un canal de venta de un producto.
// Lleva el set completo de campos de fee; el registro del motor de pricing decide
// cuáles aplican según ChannelType.
type SalesChannel struct {
	ID          string
	ProductID   string
	ChannelType string // uno de los tipos del enum de pricing (SITE_PROPRIO, AMAZON_FBA, ...)
	Enabled     bool

	SalePrice         decimal.Decimal
	CommissionPercent decimal.Decimal
	ShippingCost      decimal.Decimal
	OtherCostValue    decimal.Decimal
	FixedCostPercent  decimal.Decimal
	OtherCostPercent  decimal.Decimal

	PackagingCostValue   decimal.Decimal
	FinancialCostPercent decimal.Decimal
	MarketingCostPercent decimal.Decimal
	RebateValue          decimal.Decimal
	RebatePercent        decimal.Decimal
	TacosCostPercent     decimal.Decimal
	InstallmentPercent   decimal.Decimal
	ProductCostFBA       decimal.Decimal
	ProductCostMLFull    decimal.Decimal

	ProductCode string // SKU del marketplace; opaco, no entra al cálculo

	CreatedAt time.Time
	UpdatedAt time.Time
}
