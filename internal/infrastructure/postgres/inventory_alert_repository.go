package postgres

import (
	"context"
	"fmt"

	"github.com/breadcraft/backoffice/internal/domain/entity"
	"github.com/breadcraft/backoffice/internal/domain/repository"
)

var _ repository.InventoryAlertRepository = (*InventoryAlertRepo)(nil)

// InventoryAlertRepo log de alertas sobre PostgreSQL (append-only).
type InventoryAlertRepo struct {
	q Querier
}

// NewInventoryAlertRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryAlertRepository(q Querier) *InventoryAlertRepo {
	return &InventoryAlertRepo{q: q}
}

// Create inserta una alerta. Las alertas nunca se actualizan ni se borran.
func (r *InventoryAlertRepo) Create(a *entity.InventoryAlert) error {
	query := `
		INSERT INTO inventory_alerts (id, material_id, message, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, a.ID, a.MaterialID, a.Message, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert inventory alert: %w", err)
	}
	return nil
}

// List devuelve alertas en orden de inserción (seq es serial).
func (r *InventoryAlertRepo) List(limit, offset int) ([]entity.InventoryAlert, error) {
	query := `
		SELECT id, material_id, message, created_at
		FROM inventory_alerts ORDER BY seq LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory alerts: %w", err)
	}
	defer rows.Close()

	var out []entity.InventoryAlert
	for rows.Next() {
		var a entity.InventoryAlert
		if err := rows.Scan(&a.ID, &a.MaterialID, &a.Message, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory alert: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
