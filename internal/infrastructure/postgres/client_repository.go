package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/breadcraft/backoffice/internal/domain"
	"github.com/breadcraft/backoffice/internal/domain/entity"
	"github.com/breadcraft/backoffice/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)
var _ repository.ClientHistoryRepository = (*ClientHistoryRepo)(nil)

const clientColumns = `id, name, phone, email, address, total_purchases, total_returns, created_at, updated_at`

// ClientRepo implementación del puerto ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un cliente nuevo con acumulados en cero.
func (r *ClientRepo) Create(c *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Phone, c.Email, c.Address, c.TotalPurchases, c.TotalReturns, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

func (r *ClientRepo) scanOne(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(
		&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address,
		&c.TotalPurchases, &c.TotalReturns, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan client: %w", err)
	}
	return &c, nil
}

// GetByID obtiene un cliente. Devuelve nil, nil si no existe.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene el cliente y bloquea su fila para los acumulados.
func (r *ClientRepo) GetForUpdate(id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// Update persiste datos de contacto y acumulados.
func (r *ClientRepo) Update(c *entity.Client) error {
	query := `
		UPDATE clients
		SET name = $2, phone = $3, email = $4, address = $5,
		    total_purchases = $6, total_returns = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Phone, c.Email, c.Address, c.TotalPurchases, c.TotalReturns, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// List lista clientes por fecha de alta.
func (r *ClientRepo) List(limit, offset int) ([]entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY created_at LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var out []entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address,
			&c.TotalPurchases, &c.TotalReturns, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ClientHistoryRepo historial de eventos de cliente (append-only).
type ClientHistoryRepo struct {
	q Querier
}

// NewClientHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientHistoryRepository(q Querier) *ClientHistoryRepo {
	return &ClientHistoryRepo{q: q}
}

// Create inserta un evento de historial.
func (r *ClientHistoryRepo) Create(e *entity.ClientHistory) error {
	query := `
		INSERT INTO client_history (id, client_id, event_type, description, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.ClientID, e.EventType, e.Description, e.Amount, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client history: %w", err)
	}
	return nil
}

// ListByClient devuelve los eventos de un cliente en orden cronológico.
func (r *ClientHistoryRepo) ListByClient(clientID string, limit, offset int) ([]entity.ClientHistory, error) {
	query := `
		SELECT id, client_id, event_type, description, amount, created_at
		FROM client_history WHERE client_id = $1 ORDER BY created_at LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, clientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list client history: %w", err)
	}
	defer rows.Close()

	var out []entity.ClientHistory
	for rows.Next() {
		var e entity.ClientHistory
		if err := rows.Scan(&e.ID, &e.ClientID, &e.EventType, &e.Description, &e.Amount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan client history: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
