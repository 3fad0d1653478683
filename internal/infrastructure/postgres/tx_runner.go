package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/breadcraft/backoffice/internal/application/inventory"
	"github.com/breadcraft/backoffice/internal/application/purchases"
	"github.com/breadcraft/backoffice/internal/application/sales"
	"github.com/breadcraft/backoffice/internal/domain/repository"
)

var _ inventory.TxRunner = (*InventoryTxRunner)(nil)
var _ sales.TxRunner = (*SalesTxRunner)(nil)
var _ purchases.TxRunner = (*PurchasesTxRunner)(nil)

// InventoryTxRunner ejecuta las operaciones del libro de stock dentro de una
// transacción PostgreSQL: descuento, lote y alerta se confirman juntos.
type InventoryTxRunner struct {
	pool *pgxpool.Pool
}

// NewInventoryTxRunner construye el runner con el pool.
func NewInventoryTxRunner(pool *pgxpool.Pool) *InventoryTxRunner {
	return &InventoryTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *InventoryTxRunner) Run(ctx context.Context, fn func(
	materialRepo repository.RawMaterialRepository,
	batchRepo repository.ProductionBatchRepository,
	alertRepo repository.InventoryAlertRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	materialRepo := NewRawMaterialRepository(tx)
	batchRepo := NewProductionBatchRepository(tx)
	alertRepo := NewInventoryAlertRepository(tx)

	if err := fn(materialRepo, batchRepo, alertRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// SalesTxRunner ejecuta las operaciones del conciliador de ventas dentro de
// una transacción PostgreSQL: devolución, crédito y acumulados del cliente se
// confirman juntos.
type SalesTxRunner struct {
	pool *pgxpool.Pool
}

// NewSalesTxRunner construye el runner con el pool.
func NewSalesTxRunner(pool *pgxpool.Pool) *SalesTxRunner {
	return &SalesTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *SalesTxRunner) Run(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	returnRepo repository.SaleReturnRepository,
	creditRepo repository.CreditRepository,
	clientRepo repository.ClientRepository,
	historyRepo repository.ClientHistoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	saleRepo := NewSaleRepository(tx)
	returnRepo := NewSaleReturnRepository(tx)
	creditRepo := NewCreditRepository(tx)
	clientRepo := NewClientRepository(tx)
	historyRepo := NewClientHistoryRepository(tx)

	if err := fn(saleRepo, returnRepo, creditRepo, clientRepo, historyRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// PurchasesTxRunner ejecuta las operaciones de compras dentro de una
// transacción PostgreSQL: la transición de la compra y las reposiciones de
// stock de sus líneas se confirman juntas.
type PurchasesTxRunner struct {
	pool *pgxpool.Pool
}

// NewPurchasesTxRunner construye el runner con el pool.
func NewPurchasesTxRunner(pool *pgxpool.Pool) *PurchasesTxRunner {
	return &PurchasesTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *PurchasesTxRunner) Run(ctx context.Context, fn func(
	purchaseRepo repository.PurchaseRepository,
	materialRepo repository.RawMaterialRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	purchaseRepo := NewPurchaseRepository(tx)
	materialRepo := NewRawMaterialRepository(tx)

	if err := fn(purchaseRepo, materialRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
