package repository

import "github.com/breadcraft/backoffice/internal/domain/entity"

// PurchaseRepository puerto de persistencia para compras (con sus líneas).
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	// GetByID devuelve nil, nil si no existe. Incluye las líneas en orden.
	GetByID(id string) (*entity.Purchase, error)
	// GetForUpdate bloquea la compra durante la transición de estado.
	GetForUpdate(id string) (*entity.Purchase, error)
	// Update persiste el estado. Las líneas y el total no cambian tras el registro.
	Update(purchase *entity.Purchase) error
	List(limit, offset int) ([]entity.Purchase, error)
	ListBySupplier(supplierID string, limit, offset int) ([]entity.Purchase, error)
}
