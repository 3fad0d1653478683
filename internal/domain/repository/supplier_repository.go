package repository

import "github.com/breadcraft/backoffice/internal/domain/entity"

// SupplierRepository puerto de persistencia para proveedores.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(id string) (*entity.Supplier, error)
	List(limit, offset int) ([]entity.Supplier, error)
}
