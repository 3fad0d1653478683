package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client representa un cliente de la tienda. TotalPurchases y TotalReturns son
// acumulados que mantiene el conciliador de ventas.
type Client struct {
	ID             string
	Name           string
	Phone          string
	Email          string
	Address        string
	TotalPurchases decimal.Decimal
	TotalReturns   decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Tipos de evento del historial de cliente.
const (
	ClientEventPurchase = "purchase"
	ClientEventReturn   = "return"
	ClientEventCredit   = "credit"
)

// ClientHistory es un evento append-only del historial de un cliente.
type ClientHistory struct {
	ID          string
	ClientID    string
	EventType   string // purchase, return, credit
	Description string
	Amount      decimal.Decimal
	CreatedAt   time.Time
}
