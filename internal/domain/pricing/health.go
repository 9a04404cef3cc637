package pricing

import "github.com/shopspring/decimal"

// HealthCategory clasifica un margen en una categoría discreta para señalización
// al usuario.
type HealthCategory string

const (
	HealthExcellent HealthCategory = "excellent"
	HealthGood      HealthCategory = "good"
	HealthFair      HealthCategory = "fair"
	HealthPoor      HealthCategory = "poor"
	HealthLoss      HealthCategory = "loss"
	// HealthNoData: portafolio sin canales habilitados. Distinto de pérdida:
	// sin datos el motor no afirma que el producto sea rentable ni deficitario.
	HealthNoData HealthCategory = "no_data"
)

// healthThresholds define los cortes de clasificación en orden descendente.
// Cada corte es inclusivo por abajo (margen >= Min). Tabla única para que un
// cambio de umbral no pueda divergir entre call sites.
var healthThresholds = []struct {
	Min      decimal.Decimal
	Category HealthCategory
}{
	{Min: decimal.NewFromInt(20), Category: HealthExcellent},
	{Min: decimal.NewFromInt(10), Category: HealthGood},
}

// Classify mapea un margen (porcentaje, con signo) a su categoría de salud:
// >= 20 excellent, >= 10 good, > 0 fair, == 0 poor, < 0 loss.
// Sirve para el promedio del portafolio o para el margen de un canal individual;
// HealthNoData la asigna únicamente el agregador cuando no hay canales.
func Classify(marginPercent decimal.Decimal) HealthCategory {
	for _, th := range healthThresholds {
		if marginPercent.GreaterThanOrEqual(th.Min) {
			return th.Category
		}
	}
	switch {
	case marginPercent.IsPositive():
		return HealthFair
	case marginPercent.IsZero():
		return HealthPoor
	default:
		return HealthLoss
	}
}
