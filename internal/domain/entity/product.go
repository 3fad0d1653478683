package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto terminado vendible.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta unitario
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
