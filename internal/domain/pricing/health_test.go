package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Multicanal-api/internal/domain/pricing"
)

// TestClassify_Umbrales cubre cada categoría y sus valores de frontera: los
// cortes son inclusivos por abajo (20.00 es excellent, 10.00 es good, 0 es poor).
func TestClassify_Umbrales(t *testing.T) {
	cases := []struct {
		nombre   string
		margen   string
		esperado pricing.HealthCategory
	}{
		{"muy por encima", "35.5", pricing.HealthExcellent},
		{"frontera excellent", "20", pricing.HealthExcellent},
		{"justo bajo excellent", "19.99", pricing.HealthGood},
		{"frontera good", "10", pricing.HealthGood},
		{"justo bajo good", "9.99", pricing.HealthFair},
		{"apenas positivo", "0.01", pricing.HealthFair},
		{"exactamente cero", "0", pricing.HealthPoor},
		{"apenas negativo", "-0.01", pricing.HealthLoss},
		{"pérdida fuerte", "-42", pricing.HealthLoss},
	}

	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			got := pricing.Classify(decimal.RequireFromString(tc.margen))
			assert.Equal(t, tc.esperado, got,
				"margen %s debe clasificar como %s", tc.margen, tc.esperado)
		})
	}
}
