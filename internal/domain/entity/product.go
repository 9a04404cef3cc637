package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo del vendedor. BaseCost y TaxPercent
// forman la base de costo que comparten todos sus canales de venta en el cálculo
// de rentabilidad.
type Product struct {
	ID          string
	CompanyID   string
	SKU         string // código único por empresa
	Name        string
	Description string
	BaseCost    decimal.Decimal // costo unitario de adquisición/producción
	TaxPercent  decimal.Decimal // impuesto del producto en [0,100], sobre BaseCost
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
