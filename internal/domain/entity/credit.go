package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un crédito de tienda.
// open --consumo total--> applied (terminal)
// open --expiración manual--> expired (terminal)
const (
	CreditStatusOpen    = "open"
	CreditStatusApplied = "applied"
	CreditStatusExpired = "expired"
)

// Credit es el saldo a favor de un cliente emitido por una devolución.
// Se crea únicamente como efecto de un SaleReturn, con Amount igual al valor
// reembolsado. Amount es el saldo vigente: los consumos parciales lo reducen
// manteniendo el crédito abierto.
type Credit struct {
	ID             string
	ClientID       string
	SaleID         string
	SourceReturnID string
	Amount         decimal.Decimal
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
