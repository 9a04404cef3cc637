package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Multicanal-api/internal/application/dto"
	"github.com/jhoicas/Multicanal-api/internal/domain/pricing"
)

// TestFormatMoney_SignoExplicito: positivos llevan "+", negativos "-", el cero
// queda plano. Siempre 2 decimales fijos.
func TestFormatMoney_SignoExplicito(t *testing.T) {
	cases := []struct {
		valor    string
		esperado string
	}{
		{"72.5", "+72.50"},
		{"-15", "-15.00"},
		{"0", "0.00"},
		{"0.005", "0.00"}, // residuo sub-centavo no gana signo
		{"1234.567", "+1234.57"},
	}
	for _, tc := range cases {
		got := dto.FormatMoney(decimal.RequireFromString(tc.valor))
		assert.Equal(t, tc.esperado, got, "formato de %s", tc.valor)
	}
}

func TestNewChannelPricingResponse(t *testing.T) {
	calc := pricing.Calculation{
		ChannelType:         pricing.ChannelSiteProprio,
		SalePrice:           decimal.NewFromInt(150),
		NetProfit:           decimal.RequireFromString("72.5"),
		ProfitMarginPercent: decimal.RequireFromString("48.33"),
		IsProfitable:        true,
	}

	out := dto.NewChannelPricingResponse(calc)

	assert.Equal(t, "SITE_PROPRIO", out.ChannelType)
	assert.Equal(t, "+150.00", out.SalePrice)
	assert.Equal(t, "+72.50", out.NetProfit)
	assert.Equal(t, "+48.33", out.ProfitMarginPercent)
	assert.True(t, out.IsProfitable)
}

// TestNewPortfolioSummaryResponse_SinCanales: best/worst quedan en null y la
// salud reporta no_data.
func TestNewPortfolioSummaryResponse_SinCanales(t *testing.T) {
	out := dto.NewPortfolioSummaryResponse(pricing.Summary{
		AverageMarginPercent: decimal.Zero,
		TotalPotentialProfit: decimal.Zero,
		Health:               pricing.HealthNoData,
	})

	assert.Nil(t, out.BestChannel)
	assert.Nil(t, out.WorstChannel)
	assert.Equal(t, "0.00", out.AverageMarginPercent)
	assert.Equal(t, "0.00", out.TotalPotentialProfit)
	assert.Equal(t, "no_data", out.Health)
}
