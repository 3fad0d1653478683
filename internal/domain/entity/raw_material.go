package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawMaterial representa una materia prima en stock (harina, levadura, etc.).
// Quantity solo la mutan las operaciones del libro de stock (consumo/reposición),
// nunca se escribe directamente. Puede quedar negativa por sobre-consumo: el
// motor no bloquea el consumo, solo alerta (política documentada).
type RawMaterial struct {
	ID                string
	Name              string
	Unit              string // kg, g, l, ml
	Quantity          decimal.Decimal
	MinimumQuantity   decimal.Decimal // umbral de alerta de stock bajo
	LastPurchasePrice decimal.Decimal
	LastPurchaseDate  *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// BelowMinimum indica si el stock actual está por debajo del mínimo configurado.
func (m *RawMaterial) BelowMinimum() bool {
	return m.Quantity.LessThan(m.MinimumQuantity)
}
