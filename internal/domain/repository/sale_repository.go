package repository

import "github.com/breadcraft/backoffice/internal/domain/entity"

// SaleRepository puerto de persistencia para ventas (con sus líneas).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	// GetByID devuelve nil, nil si no existe. Incluye las líneas en orden.
	GetByID(id string) (*entity.Sale, error)
	// GetForUpdate bloquea la venta para el read-modify-write de devoluciones.
	GetForUpdate(id string) (*entity.Sale, error)
	// Update persiste estado y cantidades devueltas por línea. TotalValue no cambia.
	Update(sale *entity.Sale) error
	List(limit, offset int) ([]entity.Sale, error)
}
