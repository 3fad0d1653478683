package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/breadcraft/backoffice/internal/domain/entity"
)

// CreateClientRequest alta de cliente.
type CreateClientRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// ClientResponse cliente serializado con sus acumulados.
type ClientResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone,omitempty"`
	Email          string          `json:"email,omitempty"`
	Address        string          `json:"address,omitempty"`
	TotalPurchases decimal.Decimal `json:"total_purchases"`
	TotalReturns   decimal.Decimal `json:"total_returns"`
}

// NewClientResponse mapea la entidad al DTO.
func NewClientResponse(c *entity.Client) ClientResponse {
	return ClientResponse{
		ID:             c.ID,
		Name:           c.Name,
		Phone:          c.Phone,
		Email:          c.Email,
		Address:        c.Address,
		TotalPurchases: c.TotalPurchases,
		TotalReturns:   c.TotalReturns,
	}
}

// ClientHistoryResponse evento del historial de un cliente.
type ClientHistoryResponse struct {
	ID          string          `json:"id"`
	EventType   string          `json:"event_type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
}
