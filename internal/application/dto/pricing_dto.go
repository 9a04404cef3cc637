package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Multicanal-api/internal/domain/pricing"
)

// Contrato estable para los consumidores del motor de pricing (UI, reportes):
// montos y porcentajes viajan como strings de 2 decimales con signo explícito
// ("+72.50", "-18.75", "0.00"). Esta capa es la única que conoce el formato de
// presentación; el motor opera solo con decimales numéricos.

// ChannelPricingResponse resultado de rentabilidad de un canal.
type ChannelPricingResponse struct {
	ChannelType         string `json:"channel_type"`
	SalePrice           string `json:"sale_price"`
	NetProfit           string `json:"net_profit"`
	ProfitMarginPercent string `json:"profit_margin_percent"`
	IsProfitable        bool   `json:"is_profitable"`
}

// PortfolioSummaryResponse resumen consolidado del portafolio de canales.
type PortfolioSummaryResponse struct {
	ProfitableChannelCount int                     `json:"profitable_channel_count"`
	AverageMarginPercent   string                  `json:"average_margin_percent"`
	BestChannel            *ChannelPricingResponse `json:"best_channel"`
	WorstChannel           *ChannelPricingResponse `json:"worst_channel"`
	TotalPotentialProfit   string                  `json:"total_potential_profit"`
	Health                 string                  `json:"health"`
}

// ProductPricingResponse vista de rentabilidad de un producto completo.
type ProductPricingResponse struct {
	ProductID string                   `json:"product_id"`
	Channels  []ChannelPricingResponse `json:"channels"`
	Summary   PortfolioSummaryResponse `json:"summary"`
}

// SimulatePricingRequest evalúa un canal ad hoc sin persistir nada: base de
// costo más la configuración del canal a simular.
type SimulatePricingRequest struct {
	BaseCost   decimal.Decimal      `json:"base_cost"`
	TaxPercent decimal.Decimal      `json:"tax_percent"`
	Channel    CreateChannelRequest `json:"channel" validate:"required"`
}

// NewChannelPricingResponse formatea el resultado de un canal.
func NewChannelPricingResponse(calc pricing.Calculation) ChannelPricingResponse {
	return ChannelPricingResponse{
		ChannelType:         calc.ChannelType.String(),
		SalePrice:           FormatMoney(calc.SalePrice),
		NetProfit:           FormatMoney(calc.NetProfit),
		ProfitMarginPercent: FormatPercent(calc.ProfitMarginPercent),
		IsProfitable:        calc.IsProfitable,
	}
}

// NewPortfolioSummaryResponse formatea el resumen del portafolio.
func NewPortfolioSummaryResponse(s pricing.Summary) PortfolioSummaryResponse {
	out := PortfolioSummaryResponse{
		ProfitableChannelCount: s.ProfitableChannelCount,
		AverageMarginPercent:   FormatPercent(s.AverageMarginPercent),
		TotalPotentialProfit:   FormatMoney(s.TotalPotentialProfit),
		Health:                 string(s.Health),
	}
	if s.BestChannel != nil {
		best := NewChannelPricingResponse(*s.BestChannel)
		out.BestChannel = &best
	}
	if s.WorstChannel != nil {
		worst := NewChannelPricingResponse(*s.WorstChannel)
		out.WorstChannel = &worst
	}
	return out
}

// FormatMoney formatea un monto a 2 decimales fijos con signo explícito para
// valores positivos. El cero queda sin signo ("0.00").
func FormatMoney(d decimal.Decimal) string {
	return formatSigned(d)
}

// FormatPercent formatea un porcentaje a 2 decimales fijos con signo explícito.
func FormatPercent(d decimal.Decimal) string {
	return formatSigned(d)
}

func formatSigned(d decimal.Decimal) string {
	// Los valores llegan ya redondeados del motor; el RoundBank aquí solo evita
	// un "+0.00" si alguna vez entrara un residuo menor al centavo.
	r := d.RoundBank(2)
	s := r.StringFixed(2)
	if r.IsPositive() {
		return "+" + s
	}
	return s
}
