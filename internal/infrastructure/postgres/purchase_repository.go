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

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

const purchaseColumns = `id, supplier_id, document_type, document_number, total_value, status, purchase_date, created_at, updated_at`

// PurchaseRepo implementación del puerto PurchaseRepository sobre PostgreSQL.
// La compra y sus líneas van en tablas separadas (purchases, purchase_items);
// las líneas conservan su orden con line_no.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste la compra y sus líneas. document_number tiene constraint único.
func (r *PurchaseRepo) Create(p *entity.Purchase) error {
	ctx := context.Background()
	query := `
		INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.SupplierID, p.DocumentType, p.DocumentNumber, p.TotalValue,
		p.Status, p.PurchaseDate, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase: %w", err)
	}
	for i, item := range p.Items {
		itemQuery := `
			INSERT INTO purchase_items (purchase_id, line_no, raw_material_id, description, quantity, unit, unit_price)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`
		_, err := r.q.Exec(ctx, itemQuery,
			p.ID, i, item.RawMaterialID, item.Description, item.Quantity, item.Unit, item.UnitPrice,
		)
		if err != nil {
			return fmt.Errorf("insert purchase item: %w", err)
		}
	}
	return nil
}

func (r *PurchaseRepo) get(id string, forUpdate bool) (*entity.Purchase, error) {
	ctx := context.Background()
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var p entity.Purchase
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.SupplierID, &p.DocumentType, &p.DocumentNumber, &p.TotalValue,
		&p.Status, &p.PurchaseDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}

	items, err := r.loadItems(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Items = items
	return &p, nil
}

func (r *PurchaseRepo) loadItems(ctx context.Context, purchaseID string) ([]entity.PurchaseItem, error) {
	query := `
		SELECT raw_material_id, description, quantity, unit, unit_price
		FROM purchase_items WHERE purchase_id = $1 ORDER BY line_no`
	rows, err := r.q.Query(ctx, query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("list purchase items: %w", err)
	}
	defer rows.Close()

	var items []entity.PurchaseItem
	for rows.Next() {
		var it entity.PurchaseItem
		if err := rows.Scan(&it.RawMaterialID, &it.Description, &it.Quantity, &it.Unit, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetByID obtiene una compra con sus líneas. Devuelve nil, nil si no existe.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene la compra y bloquea su fila: serializa completar y
// cancelar concurrentes sobre la misma compra.
func (r *PurchaseRepo) GetForUpdate(id string) (*entity.Purchase, error) {
	return r.get(id, true)
}

// Update persiste el estado. Las líneas y el total no cambian tras el registro.
func (r *PurchaseRepo) Update(p *entity.Purchase) error {
	query := `UPDATE purchases SET status = $2, updated_at = $3 WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, p.ID, p.Status, p.UpdatedAt); err != nil {
		return fmt.Errorf("update purchase: %w", err)
	}
	return nil
}

func (r *PurchaseRepo) list(query string, args ...any) ([]entity.Purchase, error) {
	ctx := context.Background()
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	var out []entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(
			&p.ID, &p.SupplierID, &p.DocumentType, &p.DocumentNumber, &p.TotalValue,
			&p.Status, &p.PurchaseDate, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		items, err := r.loadItems(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Items = items
	}
	return out, nil
}

// List lista compras en orden cronológico, con sus líneas.
func (r *PurchaseRepo) List(limit, offset int) ([]entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases ORDER BY created_at LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListBySupplier lista las compras de un proveedor en orden cronológico.
func (r *PurchaseRepo) ListBySupplier(supplierID string, limit, offset int) ([]entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE supplier_id = $3 ORDER BY created_at LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset, supplierID)
}
