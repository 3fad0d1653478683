package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/breadcraft/backoffice/internal/domain/entity"
)

// SaleItemRequest línea de una venta nueva.
type SaleItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateSaleRequest alta de venta.
type CreateSaleRequest struct {
	ClientID string            `json:"client_id"`
	Items    []SaleItemRequest `json:"items"`
}

// ReturnItemRequest línea devuelta.
type ReturnItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// CreateReturnRequest devolución contra una venta.
type CreateReturnRequest struct {
	Items []ReturnItemRequest `json:"items"`
}

// ApplyCreditRequest consumo de un crédito.
type ApplyCreditRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// SaleItemResponse línea de venta serializada.
type SaleItemResponse struct {
	ProductID        string          `json:"product_id"`
	Quantity         decimal.Decimal `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	ReturnedQuantity decimal.Decimal `json:"returned_quantity"`
}

// SaleResponse venta serializada.
type SaleResponse struct {
	ID         string             `json:"id"`
	ClientID   string             `json:"client_id"`
	Items      []SaleItemResponse `json:"items"`
	TotalValue decimal.Decimal    `json:"total_value"`
	Status     string             `json:"status"`
	SaleDate   time.Time          `json:"sale_date"`
}

// NewSaleResponse mapea la entidad al DTO.
func NewSaleResponse(s *entity.Sale) SaleResponse {
	items := make([]SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, SaleItemResponse{
			ProductID:        it.ProductID,
			Quantity:         it.Quantity,
			UnitPrice:        it.UnitPrice,
			ReturnedQuantity: it.ReturnedQuantity,
		})
	}
	return SaleResponse{
		ID:         s.ID,
		ClientID:   s.ClientID,
		Items:      items,
		TotalValue: s.TotalValue,
		Status:     s.Status,
		SaleDate:   s.SaleDate,
	}
}

// ReturnResponse devolución serializada.
type ReturnResponse struct {
	ID            string              `json:"id"`
	SaleID        string              `json:"sale_id"`
	Items         []ReturnItemRequest `json:"items"`
	ValueRefunded decimal.Decimal     `json:"value_refunded"`
	CreatedAt     time.Time           `json:"created_at"`
}

// CreditResponse crédito serializado.
type CreditResponse struct {
	ID             string          `json:"id"`
	ClientID       string          `json:"client_id"`
	SaleID         string          `json:"sale_id"`
	SourceReturnID string          `json:"source_return_id"`
	Amount         decimal.Decimal `json:"amount"`
	Status         string          `json:"status"`
}

// NewCreditResponse mapea la entidad al DTO.
func NewCreditResponse(c *entity.Credit) CreditResponse {
	return CreditResponse{
		ID:             c.ID,
		ClientID:       c.ClientID,
		SaleID:         c.SaleID,
		SourceReturnID: c.SourceReturnID,
		Amount:         c.Amount,
		Status:         c.Status,
	}
}

// ProcessReturnResponse resultado transaccional de la devolución.
type ProcessReturnResponse struct {
	Sale   SaleResponse   `json:"sale"`
	Return ReturnResponse `json:"return"`
	Credit CreditResponse `json:"credit"`
}
