package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReturnItem es una línea devuelta dentro de una devolución.
type ReturnItem struct {
	ProductID string
	Quantity  decimal.Decimal
}

// SaleReturn registra una devolución (parcial o total) contra una venta
// completada. Referencia la venta por ID sin poseerla. Inmutable una vez creada.
type SaleReturn struct {
	ID            string
	SaleID        string
	Items         []ReturnItem
	ValueRefunded decimal.Decimal // Σ cantidad * precio unitario original
	CreatedAt     time.Time
}
