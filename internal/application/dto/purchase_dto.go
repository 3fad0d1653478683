package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/breadcraft/backoffice/internal/domain/entity"
)

// CreateSupplierRequest alta de proveedor.
type CreateSupplierRequest struct {
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// SupplierResponse proveedor serializado.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSupplierResponse mapea la entidad al DTO.
func NewSupplierResponse(s *entity.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		TaxID:     s.TaxID,
		Address:   s.Address,
		Phone:     s.Phone,
		Email:     s.Email,
		CreatedAt: s.CreatedAt,
	}
}

// PurchaseItemRequest línea de compra ya extraída del documento fiscal.
type PurchaseItemRequest struct {
	RawMaterialID string          `json:"raw_material_id"`
	Description   string          `json:"description"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
}

// RegisterPurchaseRequest registro de una compra con líneas ya parseadas.
type RegisterPurchaseRequest struct {
	SupplierID     string                `json:"supplier_id"`
	DocumentType   string                `json:"document_type"`
	DocumentNumber string                `json:"document_number"`
	Items          []PurchaseItemRequest `json:"items"`
}

// PurchaseItemResponse línea de compra serializada.
type PurchaseItemResponse struct {
	RawMaterialID string          `json:"raw_material_id"`
	Description   string          `json:"description,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit,omitempty"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	LineTotal     decimal.Decimal `json:"line_total"`
}

// PurchaseResponse compra serializada con sus líneas.
type PurchaseResponse struct {
	ID             string                 `json:"id"`
	SupplierID     string                 `json:"supplier_id"`
	DocumentType   string                 `json:"document_type"`
	DocumentNumber string                 `json:"document_number"`
	Items          []PurchaseItemResponse `json:"items"`
	TotalValue     decimal.Decimal        `json:"total_value"`
	Status         string                 `json:"status"`
	PurchaseDate   time.Time              `json:"purchase_date"`
}

// NewPurchaseResponse mapea la entidad al DTO.
func NewPurchaseResponse(p *entity.Purchase) PurchaseResponse {
	items := make([]PurchaseItemResponse, 0, len(p.Items))
	for i := range p.Items {
		it := &p.Items[i]
		items = append(items, PurchaseItemResponse{
			RawMaterialID: it.RawMaterialID,
			Description:   it.Description,
			Quantity:      it.Quantity,
			Unit:          it.Unit,
			UnitPrice:     it.UnitPrice,
			LineTotal:     it.LineTotal(),
		})
	}
	return PurchaseResponse{
		ID:             p.ID,
		SupplierID:     p.SupplierID,
		DocumentType:   p.DocumentType,
		DocumentNumber: p.DocumentNumber,
		Items:          items,
		TotalValue:     p.TotalValue,
		Status:         p.Status,
		PurchaseDate:   p.PurchaseDate,
	}
}
