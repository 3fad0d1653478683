package postgres

import (
	"context"
	"fmt"

	"github.com/breadcraft/backoffice/internal/domain/entity"
	"github.com/breadcraft/backoffice/internal/domain/repository"
)

var _ repository.ProductionBatchRepository = (*ProductionBatchRepo)(nil)

const batchColumns = `id, product_id, raw_material_id, quantity_consumed, losses, status, production_date, created_at`

// ProductionBatchRepo historial de lotes sobre PostgreSQL (append-only).
type ProductionBatchRepo struct {
	q Querier
}

// NewProductionBatchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionBatchRepository(q Querier) *ProductionBatchRepo {
	return &ProductionBatchRepo{q: q}
}

// Create inserta un lote. Los lotes nunca se actualizan ni se borran.
func (r *ProductionBatchRepo) Create(b *entity.ProductionBatch) error {
	query := `
		INSERT INTO production_batches (` + batchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.ProductID, b.RawMaterialID, b.QuantityConsumed,
		b.Losses, b.Status, b.ProductionDate, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert production batch: %w", err)
	}
	return nil
}

// List lista lotes en orden cronológico.
func (r *ProductionBatchRepo) List(limit, offset int) ([]entity.ProductionBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM production_batches ORDER BY created_at LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByMaterial lista los lotes que consumieron una materia prima.
func (r *ProductionBatchRepo) ListByMaterial(materialID string, limit, offset int) ([]entity.ProductionBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM production_batches WHERE raw_material_id = $3 ORDER BY created_at LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset, materialID)
}

func (r *ProductionBatchRepo) list(query string, limit, offset int, extra ...any) ([]entity.ProductionBatch, error) {
	args := append([]any{limit, offset}, extra...)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list production batches: %w", err)
	}
	defer rows.Close()

	var out []entity.ProductionBatch
	for rows.Next() {
		var b entity.ProductionBatch
		if err := rows.Scan(
			&b.ID, &b.ProductID, &b.RawMaterialID, &b.QuantityConsumed,
			&b.Losses, &b.Status, &b.ProductionDate, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan production batch: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
