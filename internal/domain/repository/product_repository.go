package repository

import "github.com/breadcraft/backoffice/internal/domain/entity"

// ProductRepository puerto de persistencia para productos terminados.
type ProductRepository interface {
	Create(product *entity.Product) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]entity.Product, error)
}
