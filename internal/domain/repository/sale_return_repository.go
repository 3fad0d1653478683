package repository

import "github.com/breadcraft/backoffice/internal/domain/entity"

// SaleReturnRepository puerto para devoluciones (append-only).
type SaleReturnRepository interface {
	Create(ret *entity.SaleReturn) error
	ListBySale(saleID string) ([]entity.SaleReturn, error)
}
