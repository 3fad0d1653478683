package repository

import "github.com/breadcraft/backoffice/internal/domain/entity"

// ClientRepository puerto de persistencia para clientes.
type ClientRepository interface {
	Create(client *entity.Client) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(id string) (*entity.Client, error)
	// GetForUpdate bloquea la fila para actualizar los acumulados.
	GetForUpdate(id string) (*entity.Client, error)
	Update(client *entity.Client) error
	List(limit, offset int) ([]entity.Client, error)
}

// ClientHistoryRepository puerto para el historial de eventos de cliente (append-only).
type ClientHistoryRepository interface {
	Create(event *entity.ClientHistory) error
	ListByClient(clientID string, limit, offset int) ([]entity.ClientHistory, error)
}
