package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/breadcraft/backoffice/internal/domain/entity"
	"github.com/breadcraft/backoffice/internal/domain/repository"
)

var _ repository.CreditRepository = (*CreditRepo)(nil)

const creditColumns = `id, client_id, sale_id, source_return_id, amount, status, created_at, updated_at`

// CreditRepo implementación del puerto CreditRepository sobre PostgreSQL.
type CreditRepo struct {
	q Querier
}

// NewCreditRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCreditRepository(q Querier) *CreditRepo {
	return &CreditRepo{q: q}
}

// Create persiste un crédito emitido por una devolución.
func (r *CreditRepo) Create(c *entity.Credit) error {
	query := `
		INSERT INTO credits (` + creditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.ClientID, c.SaleID, c.SourceReturnID, c.Amount, c.Status, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert credit: %w", err)
	}
	return nil
}

func (r *CreditRepo) scanOne(row pgx.Row) (*entity.Credit, error) {
	var c entity.Credit
	err := row.Scan(
		&c.ID, &c.ClientID, &c.SaleID, &c.SourceReturnID, &c.Amount, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan credit: %w", err)
	}
	return &c, nil
}

// GetByID obtiene un crédito. Devuelve nil, nil si no existe.
func (r *CreditRepo) GetByID(id string) (*entity.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene el crédito y bloquea su fila: serializa los consumos
// concurrentes del mismo crédito.
func (r *CreditRepo) GetForUpdate(id string) (*entity.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// Update persiste saldo y estado.
func (r *CreditRepo) Update(c *entity.Credit) error {
	query := `UPDATE credits SET amount = $2, status = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.Amount, c.Status, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update credit: %w", err)
	}
	return nil
}

func (r *CreditRepo) list(query string, args ...any) ([]entity.Credit, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list credits: %w", err)
	}
	defer rows.Close()

	var out []entity.Credit
	for rows.Next() {
		var c entity.Credit
		if err := rows.Scan(
			&c.ID, &c.ClientID, &c.SaleID, &c.SourceReturnID, &c.Amount, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan credit: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// List lista créditos en orden cronológico.
func (r *CreditRepo) List(limit, offset int) ([]entity.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits ORDER BY created_at LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByClient lista los créditos de un cliente.
func (r *CreditRepo) ListByClient(clientID string, limit, offset int) ([]entity.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits WHERE client_id = $3 ORDER BY created_at LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset, clientID)
}
