package postgres

import (
	"context"
	"fmt"

	"github.com/breadcraft/backoffice/internal/domain/entity"
	"github.com/breadcraft/backoffice/internal/domain/repository"
)

var _ repository.SaleReturnRepository = (*SaleReturnRepo)(nil)

// SaleReturnRepo devoluciones sobre PostgreSQL (append-only).
type SaleReturnRepo struct {
	q Querier
}

// NewSaleReturnRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleReturnRepository(q Querier) *SaleReturnRepo {
	return &SaleReturnRepo{q: q}
}

// Create inserta la devolución y sus líneas. Inmutable una vez creada.
func (r *SaleReturnRepo) Create(ret *entity.SaleReturn) error {
	ctx := context.Background()
	query := `
		INSERT INTO sale_returns (id, sale_id, value_refunded, created_at)
		VALUES ($1, $2, $3, $4)`
	if _, err := r.q.Exec(ctx, query, ret.ID, ret.SaleID, ret.ValueRefunded, ret.CreatedAt); err != nil {
		return fmt.Errorf("insert sale return: %w", err)
	}
	for i, item := range ret.Items {
		itemQuery := `
			INSERT INTO sale_return_items (return_id, line_no, product_id, quantity)
			VALUES ($1, $2, $3, $4)`
		if _, err := r.q.Exec(ctx, itemQuery, ret.ID, i, item.ProductID, item.Quantity); err != nil {
			return fmt.Errorf("insert sale return item: %w", err)
		}
	}
	return nil
}

// ListBySale devuelve las devoluciones de una venta en orden cronológico.
func (r *SaleReturnRepo) ListBySale(saleID string) ([]entity.SaleReturn, error) {
	ctx := context.Background()
	query := `
		SELECT id, sale_id, value_refunded, created_at
		FROM sale_returns WHERE sale_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale returns: %w", err)
	}
	defer rows.Close()

	var out []entity.SaleReturn
	for rows.Next() {
		var ret entity.SaleReturn
		if err := rows.Scan(&ret.ID, &ret.SaleID, &ret.ValueRefunded, &ret.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale return: %w", err)
		}
		out = append(out, ret)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		itemQuery := `
			SELECT product_id, quantity
			FROM sale_return_items WHERE return_id = $1 ORDER BY line_no`
		itemRows, err := r.q.Query(ctx, itemQuery, out[i].ID)
		if err != nil {
			return nil, fmt.Errorf("list sale return items: %w", err)
		}
		var items []entity.ReturnItem
		for itemRows.Next() {
			var it entity.ReturnItem
			if err := itemRows.Scan(&it.ProductID, &it.Quantity); err != nil {
				itemRows.Close()
				return nil, fmt.Errorf("scan sale return item: %w", err)
			}
			items = append(items, it)
		}
		itemRows.Close()
		if err := itemRows.Err(); err != nil {
			return nil, err
		}
		out[i].Items = items
	}
	return out, nil
}
