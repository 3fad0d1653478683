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

var _ repository.RawMaterialRepository = (*RawMaterialRepo)(nil)

const rawMaterialColumns = `id, name, unit, quantity, minimum_quantity, last_purchase_price, last_purchase_date, created_at, updated_at`

// RawMaterialRepo implementación del puerto RawMaterialRepository sobre PostgreSQL.
type RawMaterialRepo struct {
	q Querier
}

// NewRawMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRawMaterialRepository(q Querier) *RawMaterialRepo {
	return &RawMaterialRepo{q: q}
}

// Create persiste una materia prima nueva.
func (r *RawMaterialRepo) Create(m *entity.RawMaterial) error {
	query := `
		INSERT INTO raw_materials (` + rawMaterialColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Name, m.Unit, m.Quantity, m.MinimumQuantity,
		m.LastPurchasePrice, m.LastPurchaseDate, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert raw material: %w", err)
	}
	return nil
}

func (r *RawMaterialRepo) scanOne(row pgx.Row) (*entity.RawMaterial, error) {
	var m entity.RawMaterial
	err := row.Scan(
		&m.ID, &m.Name, &m.Unit, &m.Quantity, &m.MinimumQuantity,
		&m.LastPurchasePrice, &m.LastPurchaseDate, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan raw material: %w", err)
	}
	return &m, nil
}

// GetByID obtiene una materia prima por ID. Devuelve nil, nil si no existe.
func (r *RawMaterialRepo) GetByID(id string) (*entity.RawMaterial, error) {
	query := `SELECT ` + rawMaterialColumns + ` FROM raw_materials WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene la materia prima y bloquea la fila (SELECT FOR UPDATE).
func (r *RawMaterialRepo) GetForUpdate(id string) (*entity.RawMaterial, error) {
	query := `SELECT ` + rawMaterialColumns + ` FROM raw_materials WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// Update persiste cantidad, umbral y datos de compra.
func (r *RawMaterialRepo) Update(m *entity.RawMaterial) error {
	query := `
		UPDATE raw_materials
		SET name = $2, unit = $3, quantity = $4, minimum_quantity = $5,
		    last_purchase_price = $6, last_purchase_date = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Name, m.Unit, m.Quantity, m.MinimumQuantity,
		m.LastPurchasePrice, m.LastPurchaseDate, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update raw material: %w", err)
	}
	return nil
}

// List lista materias primas por fecha de alta.
func (r *RawMaterialRepo) List(limit, offset int) ([]entity.RawMaterial, error) {
	query := `SELECT ` + rawMaterialColumns + ` FROM raw_materials ORDER BY created_at LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list raw materials: %w", err)
	}
	defer rows.Close()

	var out []entity.RawMaterial
	for rows.Next() {
		var m entity.RawMaterial
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Unit, &m.Quantity, &m.MinimumQuantity,
			&m.LastPurchasePrice, &m.LastPurchaseDate, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan raw material: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
