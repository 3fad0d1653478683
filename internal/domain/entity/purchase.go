package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una compra a proveedor.
// pending --completar--> completed (terminal, repone el stock)
// pending --cancelar--> cancelled (terminal)
const (
	PurchaseStatusPending   = "pending"
	PurchaseStatusCompleted = "completed"
	PurchaseStatusCancelled = "cancelled"
)

// Tipos de documento de origen de una compra.
const (
	PurchaseDocumentXML = "xml"
	PurchaseDocumentPDF = "pdf"
)

// PurchaseItem es una línea de compra ya extraída del documento fiscal.
// RawMaterialID enlaza la línea con la materia prima que repone al completarse.
type PurchaseItem struct {
	RawMaterialID string
	Description   string
	Quantity      decimal.Decimal
	Unit          string
	UnitPrice     decimal.Decimal
}

// LineTotal devuelve el valor de la línea (cantidad * precio unitario).
func (i *PurchaseItem) LineTotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

// Purchase es una compra a proveedor registrada a partir de un documento
// fiscal ya parseado. Nace pending; al completarse, cada línea incrementa el
// stock de su materia prima y actualiza su último precio de compra.
// DocumentNumber es único: el mismo documento no se registra dos veces.
type Purchase struct {
	ID             string
	SupplierID     string
	DocumentType   string // xml, pdf
	DocumentNumber string
	Items          []PurchaseItem // orden de inserción
	TotalValue     decimal.Decimal
	Status         string
	PurchaseDate   time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
