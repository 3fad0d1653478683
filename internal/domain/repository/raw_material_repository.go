package repository

import "github.com/breadcraft/backoffice/internal/domain/entity"

// RawMaterialRepository puerto de persistencia para materias primas.
// Usado dentro de transacciones para garantizar un solo escritor por agregado.
type RawMaterialRepository interface {
	Create(material *entity.RawMaterial) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(id string) (*entity.RawMaterial, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.RawMaterial, error)
	Update(material *entity.RawMaterial) error
	List(limit, offset int) ([]entity.RawMaterial, error)
}
