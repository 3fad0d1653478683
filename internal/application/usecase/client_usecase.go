package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/breadcraft/backoffice/internal/domain"
	"github.com/breadcraft/backoffice/internal/domain/entity"
	"github.com/breadcraft/backoffice/internal/domain/repository"
)

// ClientUseCase operaciones CRUD sobre clientes y consulta de su historial.
type ClientUseCase struct {
	clientRepo  repository.ClientRepository
	historyRepo repository.ClientHistoryRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clientRepo repository.ClientRepository, historyRepo repository.ClientHistoryRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo, historyRepo: historyRepo}
}

// CreateClientInput datos de alta de un cliente.
type CreateClientInput struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// Create da de alta un cliente. Los acumulados inician en cero.
func (uc *ClientUseCase) Create(ctx context.Context, input CreateClientInput) (*entity.Client, error) {
	if input.Name == "" {
		return nil, domain.NewInvalidInput(domain.CodeInvalidItems, "")
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
		Address:   input.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetByID obtiene un cliente.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.NewNotFound(domain.CodeClientNotFound, id)
	}
	return client, nil
}

// List lista clientes.
func (uc *ClientUseCase) List(ctx context.Context, limit, offset int) ([]entity.Client, error) {
	return uc.clientRepo.List(limit, offset)
}

// History devuelve los eventos del historial de un cliente.
func (uc *ClientUseCase) History(ctx context.Context, clientID string, limit, offset int) ([]entity.ClientHistory, error) {
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.NewNotFound(domain.CodeClientNotFound, clientID)
	}
	return uc.historyRepo.ListByClient(clientID, limit, offset)
}
