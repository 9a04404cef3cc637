package usecase

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Multicanal-api/internal/domain"
	"github.com/jhoicas/Multicanal-api/internal/domain/entity"
	"github.com/jhoicas/Multicanal-api/internal/domain/pricing"
)

// Validación de rangos en la frontera de la aplicación. El motor de pricing
// asume entrada pre-validada y no recorta valores: recortar en silencio
// ocultaría errores de captura que afectan la ganancia mostrada al vendedor,
// así que aquí se rechazan antes de invocar el motor.

var percentMax = decimal.NewFromInt(100)

// validateCostBasis valida la base de costo de un producto.
func validateCostBasis(baseCost, taxPercent decimal.Decimal) error {
	if baseCost.IsNegative() {
		return fmt.Errorf("%w: base_cost no puede ser negativo", domain.ErrInvalidInput)
	}
	return validatePercent("tax_percent", taxPercent)
}

// validateChannel valida rangos de todos los campos numéricos de un canal y que
// el tipo exista en el registro de fees.
func validateChannel(ch *entity.SalesChannel) error {
	if _, err := pricing.ParseChannelType(ch.ChannelType); err != nil {
		return err
	}
	amounts := map[string]decimal.Decimal{
		"sale_price":           ch.SalePrice,
		"shipping_cost":        ch.ShippingCost,
		"other_cost_value":     ch.OtherCostValue,
		"packaging_cost_value": ch.PackagingCostValue,
		"rebate_value":         ch.RebateValue,
		"product_cost_fba":     ch.ProductCostFBA,
		"product_cost_ml_full": ch.ProductCostMLFull,
	}
	for name, v := range amounts {
		if v.IsNegative() {
			return fmt.Errorf("%w: %s no puede ser negativo", domain.ErrInvalidInput, name)
		}
	}
	percents := map[string]decimal.Decimal{
		"commission_percent":     ch.CommissionPercent,
		"fixed_cost_percent":     ch.FixedCostPercent,
		"other_cost_percent":     ch.OtherCostPercent,
		"financial_cost_percent": ch.FinancialCostPercent,
		"marketing_cost_percent": ch.MarketingCostPercent,
		"rebate_percent":         ch.RebatePercent,
		"tacos_cost_percent":     ch.TacosCostPercent,
		"installment_percent":    ch.InstallmentPercent,
	}
	for name, v := range percents {
		if err := validatePercent(name, v); err != nil {
			return err
		}
	}
	return nil
}

func validatePercent(name string, v decimal.Decimal) error {
	if v.IsNegative() || v.GreaterThan(percentMax) {
		return fmt.Errorf("%w: %s debe estar en [0,100]", domain.ErrInvalidInput, name)
	}
	return nil
}

// parseDecimal parsea un decimal de entrada de usuario.
func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: valor decimal inválido %q", domain.ErrInvalidInput, s)
	}
	return d, nil
}
