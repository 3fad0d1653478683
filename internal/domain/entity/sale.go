package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta.
// pending --confirmar--> completed --devolución (n veces)--> completed
// pending --cancelar--> cancelled (terminal)
const (
	SaleStatusPending   = "pending"
	SaleStatusCompleted = "completed"
	SaleStatusCancelled = "cancelled"
)

// SaleItem es una línea de venta. UnitPrice queda congelado al crear la venta:
// las devoluciones se valoran a este precio, nunca se re-cotizan.
// ReturnedQuantity acumula lo devuelto a través de todas las devoluciones.
type SaleItem struct {
	ProductID        string
	Quantity         decimal.Decimal
	UnitPrice        decimal.Decimal
	ReturnedQuantity decimal.Decimal
}

// ReturnableQuantity devuelve cuánto queda por devolver de la línea.
func (i *SaleItem) ReturnableQuantity() decimal.Decimal {
	return i.Quantity.Sub(i.ReturnedQuantity)
}

// Sale es la venta a un cliente. TotalValue se calcula al crearla y no se
// modifica por devoluciones (el historial se preserva); lo devuelto se lleva
// por línea en ReturnedQuantity.
type Sale struct {
	ID         string
	ClientID   string
	Items      []SaleItem // orden de inserción
	TotalValue decimal.Decimal
	Status     string
	SaleDate   time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ItemByProduct busca la línea de un producto. Devuelve nil si no existe.
func (s *Sale) ItemByProduct(productID string) *SaleItem {
	for i := range s.Items {
		if s.Items[i].ProductID == productID {
			return &s.Items[i]
		}
	}
	return nil
}
