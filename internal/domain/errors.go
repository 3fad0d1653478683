package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrDuplicate    = errors.New("recurso duplicado")
)

// Códigos de razón legibles por máquina que acompañan cada fallo de dominio.
const (
	CodeMaterialNotFound = "MATERIAL_NOT_FOUND"
	CodeInvalidQuantity  = "INVALID_QUANTITY"
	CodeInvalidItems     = "INVALID_ITEMS"
	CodeClientNotFound   = "CLIENT_NOT_FOUND"
	CodeProductNotFound  = "PRODUCT_NOT_FOUND"
	CodeSaleNotFound     = "SALE_NOT_FOUND"
	CodeSaleNotPending   = "SALE_NOT_PENDING"
	CodeSaleNotCompleted = "SALE_NOT_COMPLETED"
	CodeProductNotInSale = "PRODUCT_NOT_IN_SALE"
	CodeOverReturn       = "OVER_RETURN"
	CodeCreditNotFound   = "CREDIT_NOT_FOUND"
	CodeCreditNotOpen    = "CREDIT_NOT_OPEN"
	CodeCreditExceeded   = "CREDIT_EXCEEDED"

	CodeSupplierNotFound   = "SUPPLIER_NOT_FOUND"
	CodePurchaseNotFound   = "PURCHASE_NOT_FOUND"
	CodePurchaseNotPending = "PURCHASE_NOT_PENDING"
	CodeInvalidDocument    = "INVALID_DOCUMENT"
)

// Error es un fallo de dominio tipado: lleva el código de razón y el ID del
// agregado afectado, y envuelve uno de los sentinelas para errors.Is.
type Error struct {
	Code        string
	AggregateID string
	Err         error
}

func (e *Error) Error() string {
	if e.AggregateID == "" {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("%s (%s): %v", e.Code, e.AggregateID, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// NewNotFound crea un fallo NotFound con código y agregado.
func NewNotFound(code, aggregateID string) *Error {
	return &Error{Code: code, AggregateID: aggregateID, Err: ErrNotFound}
}

// NewInvalidInput crea un fallo de validación local con código y agregado.
func NewInvalidInput(code, aggregateID string) *Error {
	return &Error{Code: code, AggregateID: aggregateID, Err: ErrInvalidInput}
}

// NewConflict crea una violación de invariante (el estado actual no lo permite).
func NewConflict(code, aggregateID string) *Error {
	return &Error{Code: code, AggregateID: aggregateID, Err: ErrConflict}
}

// CodeOf devuelve el código de razón de un error de dominio, o "" si no aplica.
func CodeOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
