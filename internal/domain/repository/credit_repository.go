package repository

import "github.com/breadcraft/backoffice/internal/domain/entity"

// CreditRepository puerto de persistencia para créditos de tienda.
type CreditRepository interface {
	Create(credit *entity.Credit) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(id string) (*entity.Credit, error)
	// GetForUpdate bloquea la fila para el consumo/expiración del crédito.
	GetForUpdate(id string) (*entity.Credit, error)
	Update(credit *entity.Credit) error
	List(limit, offset int) ([]entity.Credit, error)
	ListByClient(clientID string, limit, offset int) ([]entity.Credit, error)
}
