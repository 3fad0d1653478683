package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/breadcraft/backoffice/internal/domain/entity"
	"github.com/breadcraft/backoffice/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
// La venta y sus líneas van en tablas separadas (sales, sale_items); las
// líneas conservan su orden con line_no.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta y sus líneas.
func (r *SaleRepo) Create(s *entity.Sale) error {
	ctx := context.Background()
	query := `
		INSERT INTO sales (id, client_id, total_value, status, sale_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.ClientID, s.TotalValue, s.Status, s.SaleDate, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	for i, item := range s.Items {
		itemQuery := `
			INSERT INTO sale_items (sale_id, line_no, product_id, quantity, unit_price, returned_quantity)
			VALUES ($1, $2, $3, $4, $5, $6)`
		_, err := r.q.Exec(ctx, itemQuery,
			s.ID, i, item.ProductID, item.Quantity, item.UnitPrice, item.ReturnedQuantity,
		)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

func (r *SaleRepo) get(id string, forUpdate bool) (*entity.Sale, error) {
	ctx := context.Background()
	query := `
		SELECT id, client_id, total_value, status, sale_date, created_at, updated_at
		FROM sales WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var s entity.Sale
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.ClientID, &s.TotalValue, &s.Status, &s.SaleDate, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}

	items, err := r.loadItems(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.Items = items
	return &s, nil
}

func (r *SaleRepo) loadItems(ctx context.Context, saleID string) ([]entity.SaleItem, error) {
	query := `
		SELECT product_id, quantity, unit_price, returned_quantity
		FROM sale_items WHERE sale_id = $1 ORDER BY line_no`
	rows, err := r.q.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()

	var items []entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ProductID, &it.Quantity, &it.UnitPrice, &it.ReturnedQuantity); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetByID obtiene una venta con sus líneas. Devuelve nil, nil si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene la venta y bloquea su fila: serializa las devoluciones
// concurrentes contra la misma venta.
func (r *SaleRepo) GetForUpdate(id string) (*entity.Sale, error) {
	return r.get(id, true)
}

// Update persiste estado y cantidades devueltas por línea. total_value no cambia.
func (r *SaleRepo) Update(s *entity.Sale) error {
	ctx := context.Background()
	query := `UPDATE sales SET status = $2, updated_at = $3 WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, s.ID, s.Status, s.UpdatedAt); err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	for i, item := range s.Items {
		itemQuery := `UPDATE sale_items SET returned_quantity = $3 WHERE sale_id = $1 AND line_no = $2`
		if _, err := r.q.Exec(ctx, itemQuery, s.ID, i, item.ReturnedQuantity); err != nil {
			return fmt.Errorf("update sale item: %w", err)
		}
	}
	return nil
}

// List lista ventas en orden cronológico, con sus líneas.
func (r *SaleRepo) List(limit, offset int) ([]entity.Sale, error) {
	ctx := context.Background()
	query := `
		SELECT id, client_id, total_value, status, sale_date, created_at, updated_at
		FROM sales ORDER BY created_at LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var out []entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.ClientID, &s.TotalValue, &s.Status, &s.SaleDate, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		out = append(out, s)
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
