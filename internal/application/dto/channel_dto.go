package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateChannelRequest entrada para configurar un canal de venta de un producto.
// Los campos de fee que la variante no declara pueden omitirse (quedan en 0).
type CreateChannelRequest struct {
	ChannelType string `json:"channel_type" validate:"required"`
	Enabled     bool   `json:"enabled"`

	SalePrice         decimal.Decimal `json:"sale_price"`
	CommissionPercent decimal.Decimal `json:"commission_percent"`
	ShippingCost      decimal.Decimal `json:"shipping_cost"`
	OtherCostValue    decimal.Decimal `json:"other_cost_value"`
	FixedCostPercent  decimal.Decimal `json:"fixed_cost_percent"`
	OtherCostPercent  decimal.Decimal `json:"other_cost_percent"`

	PackagingCostValue   decimal.Decimal `json:"packaging_cost_value"`
	FinancialCostPercent decimal.Decimal `json:"financial_cost_percent"`
	MarketingCostPercent decimal.Decimal `json:"marketing_cost_percent"`
	RebateValue          decimal.Decimal `json:"rebate_value"`
	RebatePercent        decimal.Decimal `json:"rebate_percent"`
	TacosCostPercent     decimal.Decimal `json:"tacos_cost_percent"`
	InstallmentPercent   decimal.Decimal `json:"installment_percent"`
	ProductCostFBA       decimal.Decimal `json:"product_cost_fba"`
	ProductCostMLFull    decimal.Decimal `json:"product_cost_ml_full"`

	ProductCode string `json:"product_code"`
}

// UpdateChannelRequest entrada para actualizar un canal (campos opcionales;
// el tipo de canal no se cambia — se elimina y se crea otro).
type UpdateChannelRequest struct {
	Enabled *bool `json:"enabled"`

	SalePrice         *decimal.Decimal `json:"sale_price"`
	CommissionPercent *decimal.Decimal `json:"commission_percent"`
	ShippingCost      *decimal.Decimal `json:"shipping_cost"`
	OtherCostValue    *decimal.Decimal `json:"other_cost_value"`
	FixedCostPercent  *decimal.Decimal `json:"fixed_cost_percent"`
	OtherCostPercent  *decimal.Decimal `json:"other_cost_percent"`

	PackagingCostValue   *decimal.Decimal `json:"packaging_cost_value"`
	FinancialCostPercent *decimal.Decimal `json:"financial_cost_percent"`
	MarketingCostPercent *decimal.Decimal `json:"marketing_cost_percent"`
	RebateValue          *decimal.Decimal `json:"rebate_value"`
	RebatePercent        *decimal.Decimal `json:"rebate_percent"`
	TacosCostPercent     *decimal.Decimal `json:"tacos_cost_percent"`
	InstallmentPercent   *decimal.Decimal `json:"installment_percent"`
	ProductCostFBA       *decimal.Decimal `json:"product_cost_fba"`
	ProductCostMLFull    *decimal.Decimal `json:"product_cost_ml_full"`

	ProductCode *string `json:"product_code"`
}

// ChannelResponse salida de un canal de venta configurado.
type ChannelResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ChannelType string `json:"channel_type"`
	Enabled     bool   `json:"enabled"`

	SalePrice         decimal.Decimal `json:"sale_price"`
	CommissionPercent decimal.Decimal `json:"commission_percent"`
	ShippingCost      decimal.Decimal `json:"shipping_cost"`
	OtherCostValue    decimal.Decimal `json:"other_cost_value"`
	FixedCostPercent  decimal.Decimal `json:"fixed_cost_percent"`
	OtherCostPercent  decimal.Decimal `json:"other_cost_percent"`

	PackagingCostValue   decimal.Decimal `json:"packaging_cost_value"`
	FinancialCostPercent decimal.Decimal `json:"financial_cost_percent"`
	MarketingCostPercent decimal.Decimal `json:"marketing_cost_percent"`
	RebateValue          decimal.Decimal `json:"rebate_value"`
	RebatePercent        decimal.Decimal `json:"rebate_percent"`
	TacosCostPercent     decimal.Decimal `json:"tacos_cost_percent"`
	InstallmentPercent   decimal.Decimal `json:"installment_percent"`
	ProductCostFBA       decimal.Decimal `json:"product_cost_fba"`
	ProductCostMLFull    decimal.Decimal `json:"product_cost_ml_full"`

	ProductCode string `json:"product_code"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChannelListResponse canales de un producto.
type ChannelListResponse struct {
	Items []ChannelResponse `json:"items"`
}
