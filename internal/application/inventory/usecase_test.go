package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breadcraft/backoffice/internal/application/inventory"
	"github.com/breadcraft/backoffice/internal/domain"
	"github.com/breadcraft/backoffice/internal/domain/entity"
	"github.com/breadcraft/backoffice/internal/domain/repository"
)

// ─── Fakes en memoria ────────────────────────────────────────────────────────
// Implementan los puertos sobre mapas/slices; GetForUpdate devuelve una copia
// para que el Update explícito sea el único camino de escritura, como en la
// implementación PostgreSQL.

type fakeMaterialRepo struct {
	items map[string]entity.RawMaterial
}

func newFakeMaterialRepo() *fakeMaterialRepo {
	return &fakeMaterialRepo{items: make(map[string]entity.RawMaterial)}
}

func (r *fakeMaterialRepo) Create(m *entity.RawMaterial) error {
	r.items[m.ID] = *m
	return nil
}

func (r *fakeMaterialRepo) GetByID(id string) (*entity.RawMaterial, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *fakeMaterialRepo) GetForUpdate(id string) (*entity.RawMaterial, error) {
	return r.GetByID(id)
}

func (r *fakeMaterialRepo) Update(m *entity.RawMaterial) error {
	r.items[m.ID] = *m
	return nil
}

func (r *fakeMaterialRepo) List(limit, offset int) ([]entity.RawMaterial, error) {
	out := make([]entity.RawMaterial, 0, len(r.items))
	for _, m := range r.items {
		out = append(out, m)
	}
	return out, nil
}

type fakeBatchRepo struct {
	batches []entity.ProductionBatch
}

func (r *fakeBatchRepo) Create(b *entity.ProductionBatch) error {
	r.batches = append(r.batches, *b)
	return nil
}

func (r *fakeBatchRepo) List(limit, offset int) ([]entity.ProductionBatch, error) {
	return r.batches, nil
}

func (r *fakeBatchRepo) ListByMaterial(materialID string, limit, offset int) ([]entity.ProductionBatch, error) {
	var out []entity.ProductionBatch
	for _, b := range r.batches {
		if b.RawMaterialID == materialID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeAlertRepo struct {
	alerts []entity.InventoryAlert
}

func (r *fakeAlertRepo) Create(a *entity.InventoryAlert) error {
	r.alerts = append(r.alerts, *a)
	return nil
}

func (r *fakeAlertRepo) List(limit, offset int) ([]entity.InventoryAlert, error) {
	return r.alerts, nil
}

type fakeLedgerTx struct {
	materials *fakeMaterialRepo
	batches   *fakeBatchRepo
	alerts    *fakeAlertRepo
}

func (t *fakeLedgerTx) Run(ctx context.Context, fn func(
	repository.RawMaterialRepository,
	repository.ProductionBatchRepository,
	repository.InventoryAlertRepository,
) error) error {
	return fn(t.materials, t.batches, t.alerts)
}

func newLedger() (*inventory.LedgerUseCase, *fakeLedgerTx) {
	tx := &fakeLedgerTx{
		materials: newFakeMaterialRepo(),
		batches:   &fakeBatchRepo{},
		alerts:    &fakeAlertRepo{},
	}
	uc := inventory.NewLedgerUseCase(tx, tx.materials, tx.batches, tx.alerts)
	return uc, tx
}

func seedMaterial(t *testing.T, tx *fakeLedgerTx, id, qty, min string) {
	t.Helper()
	err := tx.materials.Create(&entity.RawMaterial{
		ID:              id,
		Name:            "Harina de trigo",
		Unit:            "kg",
		Quantity:        decimal.RequireFromString(qty),
		MinimumQuantity: decimal.RequireFromString(min),
	})
	require.NoError(t, err)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ─── RecordConsumption ───────────────────────────────────────────────────────

func TestRecordConsumption_DescuentaYCreaLote(t *testing.T) {
	uc, tx := newLedger()
	seedMaterial(t, tx, "mat-1", "100", "20")

	res, err := uc.RecordConsumption(context.Background(), inventory.ConsumptionInput{
		MaterialID: "mat-1",
		ProductID:  "prod-1",
		Quantity:   dec("30"),
	})
	require.NoError(t, err)

	assert.True(t, res.Material.Quantity.Equal(dec("70")), "quantity = antes - consumido")
	assert.Nil(t, res.Alert, "70 >= mínimo 20: sin alerta")

	require.NotNil(t, res.Batch)
	assert.True(t, res.Batch.QuantityConsumed.Equal(dec("30")))
	assert.Equal(t, "mat-1", res.Batch.RawMaterialID)
	assert.Equal(t, entity.BatchStatusCompleted, res.Batch.Status)
	assert.Len(t, tx.batches.batches, 1)
}

func TestRecordConsumption_SinAlertaEnElLimiteExacto(t *testing.T) {
	uc, tx := newLedger()
	seedMaterial(t, tx, "mat-1", "100", "20")

	// Queda exactamente en el mínimo: la regla es quantity < minimumQuantity,
	// así que no debe alertar.
	res, err := uc.RecordConsumption(context.Background(), inventory.ConsumptionInput{
		MaterialID: "mat-1",
		Quantity:   dec("80"),
	})
	require.NoError(t, err)
	assert.True(t, res.Material.Quantity.Equal(dec("20")))
	assert.Nil(t, res.Alert)
	assert.Empty(t, tx.alerts.alerts)
}

func TestRecordConsumption_AlertasRepetidasNoSeDeduplican(t *testing.T) {
	uc, tx := newLedger()
	seedMaterial(t, tx, "mat-1", "100", "20")
	ctx := context.Background()

	res, err := uc.RecordConsumption(ctx, inventory.ConsumptionInput{MaterialID: "mat-1", Quantity: dec("85")})
	require.NoError(t, err)
	assert.True(t, res.Material.Quantity.Equal(dec("15")))
	require.NotNil(t, res.Alert, "15 < 20: primera alerta")
	assert.Equal(t, "mat-1", res.Alert.MaterialID)

	res, err = uc.RecordConsumption(ctx, inventory.ConsumptionInput{MaterialID: "mat-1", Quantity: dec("5")})
	require.NoError(t, err)
	assert.True(t, res.Material.Quantity.Equal(dec("10")))
	require.NotNil(t, res.Alert, "cada lote bajo mínimo emite su propia alerta")

	alerts, err := uc.ListAlerts(ctx, 100, 0)
	require.NoError(t, err)
	assert.Len(t, alerts, 2)
}

func TestRecordConsumption_SobreConsumoQuedaNegativo(t *testing.T) {
	uc, tx := newLedger()
	seedMaterial(t, tx, "mat-1", "100", "20")

	// El motor no rechaza el sobre-consumo, solo alerta.
	res, err := uc.RecordConsumption(context.Background(), inventory.ConsumptionInput{
		MaterialID: "mat-1",
		Quantity:   dec("150"),
	})
	require.NoError(t, err)
	assert.True(t, res.Material.Quantity.Equal(dec("-50")))
	require.NotNil(t, res.Alert)
	assert.Len(t, tx.alerts.alerts, 1)
}

func TestRecordConsumption_CantidadInvalida(t *testing.T) {
	uc, tx := newLedger()
	seedMaterial(t, tx, "mat-1", "100", "20")
	ctx := context.Background()

	for _, qty := range []string{"0", "-5"} {
		_, err := uc.RecordConsumption(ctx, inventory.ConsumptionInput{MaterialID: "mat-1", Quantity: dec(qty)})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, domain.CodeInvalidQuantity, domain.CodeOf(err))
	}

	// Ningún efecto parcial
	m, _ := tx.materials.GetByID("mat-1")
	assert.True(t, m.Quantity.Equal(dec("100")))
	assert.Empty(t, tx.batches.batches)
}

func TestRecordConsumption_MaterialNoEncontrado(t *testing.T) {
	uc, _ := newLedger()

	_, err := uc.RecordConsumption(context.Background(), inventory.ConsumptionInput{
		MaterialID: "no-existe",
		Quantity:   dec("10"),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, domain.CodeMaterialNotFound, domain.CodeOf(err))
}

// ─── Restock ─────────────────────────────────────────────────────────────────

func TestRestock_IncrementaSinAlertar(t *testing.T) {
	uc, tx := newLedger()
	seedMaterial(t, tx, "mat-1", "5", "20")

	// Sigue bajo el mínimo tras reponer, pero la reposición nunca alerta.
	updated, err := uc.Restock(context.Background(), inventory.RestockInput{
		MaterialID: "mat-1",
		Quantity:   dec("10"),
	})
	require.NoError(t, err)
	assert.True(t, updated.Quantity.Equal(dec("15")))
	assert.Empty(t, tx.alerts.alerts)
}

func TestRestock_ActualizaUltimoPrecioDeCompra(t *testing.T) {
	uc, tx := newLedger()
	seedMaterial(t, tx, "mat-1", "5", "2")

	price := dec("3.75")
	updated, err := uc.Restock(context.Background(), inventory.RestockInput{
		MaterialID: "mat-1",
		Quantity:   dec("40"),
		UnitPrice:  &price,
	})
	require.NoError(t, err)
	assert.True(t, updated.Quantity.Equal(dec("45")))
	assert.True(t, updated.LastPurchasePrice.Equal(price))
	require.NotNil(t, updated.LastPurchaseDate)
}

func TestRestock_Validaciones(t *testing.T) {
	uc, tx := newLedger()
	seedMaterial(t, tx, "mat-1", "5", "2")
	ctx := context.Background()

	_, err := uc.Restock(ctx, inventory.RestockInput{MaterialID: "mat-1", Quantity: dec("0")})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Restock(ctx, inventory.RestockInput{MaterialID: "no-existe", Quantity: dec("1")})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// ─── Altas y listados ────────────────────────────────────────────────────────

func TestCreateRawMaterial(t *testing.T) {
	uc, _ := newLedger()

	material, err := uc.CreateRawMaterial(context.Background(), inventory.CreateMaterialInput{
		Name:            "Levadura fresca",
		Unit:            "g",
		Quantity:        dec("500"),
		MinimumQuantity: dec("100"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, material.ID)
	assert.True(t, material.Quantity.Equal(dec("500")))

	got, err := uc.GetRawMaterial(context.Background(), material.ID)
	require.NoError(t, err)
	assert.Equal(t, "Levadura fresca", got.Name)
}

func TestCreateRawMaterial_Invalida(t *testing.T) {
	uc, _ := newLedger()
	ctx := context.Background()

	_, err := uc.CreateRawMaterial(ctx, inventory.CreateMaterialInput{Name: "", Quantity: dec("1")})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateRawMaterial(ctx, inventory.CreateMaterialInput{Name: "Sal", Quantity: dec("-1")})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListBatchesByMaterial(t *testing.T) {
	uc, tx := newLedger()
	seedMaterial(t, tx, "mat-1", "100", "20")
	seedMaterial(t, tx, "mat-2", "100", "20")
	ctx := context.Background()

	_, err := uc.RecordConsumption(ctx, inventory.ConsumptionInput{MaterialID: "mat-1", Quantity: dec("10")})
	require.NoError(t, err)
	_, err = uc.RecordConsumption(ctx, inventory.ConsumptionInput{MaterialID: "mat-2", Quantity: dec("20")})
	require.NoError(t, err)
	_, err = uc.RecordConsumption(ctx, inventory.ConsumptionInput{MaterialID: "mat-1", Quantity: dec("30")})
	require.NoError(t, err)

	batches, err := uc.ListBatchesByMaterial(ctx, "mat-1", 100, 0)
	require.NoError(t, err)
	require.Len(t, batches, 2)
	assert.True(t, batches[0].QuantityConsumed.Equal(dec("10")))
	assert.True(t, batches[1].QuantityConsumed.Equal(dec("30")))

	_, err = uc.ListBatchesByMaterial(ctx, "no-existe", 100, 0)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListAlerts_OrdenDeInsercion(t *testing.T) {
	uc, tx := newLedger()
	seedMaterial(t, tx, "mat-1", "10", "100")
	seedMaterial(t, tx, "mat-2", "10", "100")
	ctx := context.Background()

	_, err := uc.RecordConsumption(ctx, inventory.ConsumptionInput{MaterialID: "mat-1", Quantity: dec("1")})
	require.NoError(t, err)
	_, err = uc.RecordConsumption(ctx, inventory.ConsumptionInput{MaterialID: "mat-2", Quantity: dec("1")})
	require.NoError(t, err)

	alerts, err := uc.ListAlerts(ctx, 100, 0)
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, "mat-1", alerts[0].MaterialID)
	assert.Equal(t, "mat-2", alerts[1].MaterialID)
}
