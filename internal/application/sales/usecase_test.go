package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breadcraft/backoffice/internal/application/sales"
	"github.com/breadcraft/backoffice/internal/domain"
	"github.com/breadcraft/backoffice/internal/domain/entity"
	"github.com/breadcraft/backoffice/internal/domain/repository"
)

// ─── Fakes en memoria ────────────────────────────────────────────────────────

type fakeSaleRepo struct {
	sales map[string]entity.Sale
	order []string
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[string]entity.Sale)}
}

func cloneSale(s entity.Sale) entity.Sale {
	items := make([]entity.SaleItem, len(s.Items))
	copy(items, s.Items)
	s.Items = items
	return s
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	r.sales[s.ID] = cloneSale(*s)
	r.order = append(r.order, s.ID)
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	s = cloneSale(s)
	return &s, nil
}

func (r *fakeSaleRepo) GetForUpdate(id string) (*entity.Sale, error) {
	return r.GetByID(id)
}

func (r *fakeSaleRepo) Update(s *entity.Sale) error {
	r.sales[s.ID] = cloneSale(*s)
	return nil
}

func (r *fakeSaleRepo) List(limit, offset int) ([]entity.Sale, error) {
	out := make([]entity.Sale, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneSale(r.sales[id]))
	}
	return out, nil
}

type fakeReturnRepo struct {
	returns []entity.SaleReturn
}

func (r *fakeReturnRepo) Create(ret *entity.SaleReturn) error {
	r.returns = append(r.returns, *ret)
	return nil
}

func (r *fakeReturnRepo) ListBySale(saleID string) ([]entity.SaleReturn, error) {
	var out []entity.SaleReturn
	for _, ret := range r.returns {
		if ret.SaleID == saleID {
			out = append(out, ret)
		}
	}
	return out, nil
}

type fakeCreditRepo struct {
	credits map[string]entity.Credit
	order   []string
}

func newFakeCreditRepo() *fakeCreditRepo {
	return &fakeCreditRepo{credits: make(map[string]entity.Credit)}
}

func (r *fakeCreditRepo) Create(c *entity.Credit) error {
	r.credits[c.ID] = *c
	r.order = append(r.order, c.ID)
	return nil
}

func (r *fakeCreditRepo) GetByID(id string) (*entity.Credit, error) {
	c, ok := r.credits[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeCreditRepo) GetForUpdate(id string) (*entity.Credit, error) {
	return r.GetByID(id)
}

func (r *fakeCreditRepo) Update(c *entity.Credit) error {
	r.credits[c.ID] = *c
	return nil
}

func (r *fakeCreditRepo) List(limit, offset int) ([]entity.Credit, error) {
	out := make([]entity.Credit, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.credits[id])
	}
	return out, nil
}

func (r *fakeCreditRepo) ListByClient(clientID string, limit, offset int) ([]entity.Credit, error) {
	var out []entity.Credit
	for _, id := range r.order {
		if r.credits[id].ClientID == clientID {
			out = append(out, r.credits[id])
		}
	}
	return out, nil
}

type fakeClientRepo struct {
	clients map[string]entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[string]entity.Client)}
}

func (r *fakeClientRepo) Create(c *entity.Client) error {
	r.clients[c.ID] = *c
	return nil
}

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeClientRepo) GetForUpdate(id string) (*entity.Client, error) {
	return r.GetByID(id)
}

func (r *fakeClientRepo) Update(c *entity.Client) error {
	r.clients[c.ID] = *c
	return nil
}

func (r *fakeClientRepo) List(limit, offset int) ([]entity.Client, error) {
	out := make([]entity.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

type fakeHistoryRepo struct {
	events []entity.ClientHistory
}

func (r *fakeHistoryRepo) Create(e *entity.ClientHistory) error {
	r.events = append(r.events, *e)
	return nil
}

func (r *fakeHistoryRepo) ListByClient(clientID string, limit, offset int) ([]entity.ClientHistory, error) {
	var out []entity.ClientHistory
	for _, e := range r.events {
		if e.ClientID == clientID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeSalesTx struct {
	sales   *fakeSaleRepo
	returns *fakeReturnRepo
	credits *fakeCreditRepo
	clients *fakeClientRepo
	history *fakeHistoryRepo
}

func (t *fakeSalesTx) Run(ctx context.Context, fn func(
	repository.SaleRepository,
	repository.SaleReturnRepository,
	repository.CreditRepository,
	repository.ClientRepository,
	repository.ClientHistoryRepository,
) error) error {
	return fn(t.sales, t.returns, t.credits, t.clients, t.history)
}

type fixture struct {
	uc *sales.ReconcilerUseCase
	tx *fakeSalesTx
}

func newReconciler(t *testing.T) *fixture {
	t.Helper()
	tx := &fakeSalesTx{
		sales:   newFakeSaleRepo(),
		returns: &fakeReturnRepo{},
		credits: newFakeCreditRepo(),
		clients: newFakeClientRepo(),
		history: &fakeHistoryRepo{},
	}
	require.NoError(t, tx.clients.Create(&entity.Client{ID: "cli-1", Name: "María"}))
	uc := sales.NewReconcilerUseCase(tx, tx.sales, tx.returns, tx.credits, tx.clients)
	return &fixture{uc: uc, tx: tx}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// completedSale crea y confirma una venta de una sola línea.
func completedSale(t *testing.T, f *fixture, productID, qty, unitPrice string) *entity.Sale {
	t.Helper()
	ctx := context.Background()
	sale, err := f.uc.CreateSale(ctx, sales.CreateSaleInput{
		ClientID: "cli-1",
		Items:    []sales.SaleItemInput{{ProductID: productID, Quantity: dec(qty), UnitPrice: dec(unitPrice)}},
	})
	require.NoError(t, err)
	confirmed, err := f.uc.ConfirmSale(ctx, sale.ID)
	require.NoError(t, err)
	return confirmed
}

// ─── CreateSale / ConfirmSale / CancelSale ───────────────────────────────────

func TestCreateSale_TotalDecimalExacto(t *testing.T) {
	f := newReconciler(t)

	// 3 * 0.10 debe dar 0.30 exacto, sin deriva de punto flotante.
	sale, err := f.uc.CreateSale(context.Background(), sales.CreateSaleInput{
		ClientID: "cli-1",
		Items: []sales.SaleItemInput{
			{ProductID: "pan-frances", Quantity: dec("3"), UnitPrice: dec("0.10")},
			{ProductID: "croissant", Quantity: dec("2"), UnitPrice: dec("1.25")},
		},
	})
	require.NoError(t, err)

	assert.True(t, sale.TotalValue.Equal(dec("2.80")), "3*0.10 + 2*1.25 = 2.80, obtuvo %s", sale.TotalValue)
	assert.Equal(t, entity.SaleStatusPending, sale.Status)
	require.Len(t, sale.Items, 2)
	assert.Equal(t, "pan-frances", sale.Items[0].ProductID, "las líneas conservan su orden")
	assert.True(t, sale.Items[0].ReturnedQuantity.IsZero())
}

func TestCreateSale_Validaciones(t *testing.T) {
	f := newReconciler(t)
	ctx := context.Background()

	_, err := f.uc.CreateSale(ctx, sales.CreateSaleInput{ClientID: "cli-1"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, domain.CodeInvalidItems, domain.CodeOf(err))

	_, err = f.uc.CreateSale(ctx, sales.CreateSaleInput{
		ClientID: "cli-1",
		Items:    []sales.SaleItemInput{{ProductID: "p", Quantity: dec("0"), UnitPrice: dec("1")}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, domain.CodeInvalidQuantity, domain.CodeOf(err))

	_, err = f.uc.CreateSale(ctx, sales.CreateSaleInput{
		ClientID: "desconocido",
		Items:    []sales.SaleItemInput{{ProductID: "p", Quantity: dec("1"), UnitPrice: dec("1")}},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, domain.CodeClientNotFound, domain.CodeOf(err))
}

func TestConfirmSale_ActualizaClienteEHistorial(t *testing.T) {
	f := newReconciler(t)
	sale := completedSale(t, f, "prod-1", "10", "5.00")

	assert.Equal(t, entity.SaleStatusCompleted, sale.Status)

	client, err := f.tx.clients.GetByID("cli-1")
	require.NoError(t, err)
	assert.True(t, client.TotalPurchases.Equal(dec("50.00")))

	require.Len(t, f.tx.history.events, 1)
	assert.Equal(t, entity.ClientEventPurchase, f.tx.history.events[0].EventType)
}

func TestConfirmSale_SoloDesdePending(t *testing.T) {
	f := newReconciler(t)
	sale := completedSale(t, f, "prod-1", "1", "1.00")

	_, err := f.uc.ConfirmSale(context.Background(), sale.ID)
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, domain.CodeSaleNotPending, domain.CodeOf(err))
}

func TestConfirmSale_ClienteInexistente(t *testing.T) {
	f := newReconciler(t)
	ctx := context.Background()

	sale, err := f.uc.CreateSale(ctx, sales.CreateSaleInput{
		ClientID: "cli-1",
		Items:    []sales.SaleItemInput{{ProductID: "p", Quantity: dec("1"), UnitPrice: dec("2")}},
	})
	require.NoError(t, err)

	// El cliente desaparece entre la creación y la confirmación.
	delete(f.tx.clients.clients, "cli-1")

	_, err = f.uc.ConfirmSale(ctx, sale.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, domain.CodeClientNotFound, domain.CodeOf(err))

	// La venta sigue pending y no se registró historial.
	stored, err := f.tx.sales.GetByID(sale.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusPending, stored.Status)
	assert.Empty(t, f.tx.history.events)
}

func TestCancelSale(t *testing.T) {
	f := newReconciler(t)
	ctx := context.Background()

	sale, err := f.uc.CreateSale(ctx, sales.CreateSaleInput{
		ClientID: "cli-1",
		Items:    []sales.SaleItemInput{{ProductID: "p", Quantity: dec("1"), UnitPrice: dec("2")}},
	})
	require.NoError(t, err)

	cancelled, err := f.uc.CancelSale(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusCancelled, cancelled.Status)

	// cancelled es terminal: no se puede confirmar ni re-cancelar
	_, err = f.uc.ConfirmSale(ctx, sale.ID)
	require.ErrorIs(t, err, domain.ErrConflict)
	_, err = f.uc.CancelSale(ctx, sale.ID)
	require.ErrorIs(t, err, domain.ErrConflict)
}

// ─── ProcessReturn ───────────────────────────────────────────────────────────

func TestProcessReturn_EmiteCreditoExacto(t *testing.T) {
	f := newReconciler(t)
	sale := completedSale(t, f, "prod-1", "10", "5.00")
	ctx := context.Background()

	res, err := f.uc.ProcessReturn(ctx, sale.ID, []sales.ReturnItemInput{
		{ProductID: "prod-1", Quantity: dec("4")},
	})
	require.NoError(t, err)

	assert.True(t, res.Return.ValueRefunded.Equal(dec("20.00")))
	assert.True(t, res.Credit.Amount.Equal(res.Return.ValueRefunded), "credit.amount == return.valueRefunded siempre")
	assert.Equal(t, entity.CreditStatusOpen, res.Credit.Status)
	assert.Equal(t, res.Return.ID, res.Credit.SourceReturnID)
	assert.Equal(t, "cli-1", res.Credit.ClientID)

	// El total de la venta se preserva; lo devuelto va por línea.
	assert.True(t, res.Sale.TotalValue.Equal(dec("50.00")))
	assert.True(t, res.Sale.Items[0].ReturnableQuantity().Equal(dec("6")))
	assert.Equal(t, entity.SaleStatusCompleted, res.Sale.Status, "las devoluciones no cambian el estado")

	// Segunda devolución por 7 excede las 6 restantes.
	_, err = f.uc.ProcessReturn(ctx, sale.ID, []sales.ReturnItemInput{
		{ProductID: "prod-1", Quantity: dec("7")},
	})
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, domain.CodeOverReturn, domain.CodeOf(err))

	// El fallo no deja efectos: sigue habiendo una sola devolución y un crédito.
	assert.Len(t, f.tx.returns.returns, 1)
	assert.Len(t, f.tx.credits.order, 1)
}

func TestProcessReturn_AcumulaEntreDevoluciones(t *testing.T) {
	f := newReconciler(t)
	sale := completedSale(t, f, "prod-1", "10", "5.00")
	ctx := context.Background()

	_, err := f.uc.ProcessReturn(ctx, sale.ID, []sales.ReturnItemInput{{ProductID: "prod-1", Quantity: dec("4")}})
	require.NoError(t, err)
	_, err = f.uc.ProcessReturn(ctx, sale.ID, []sales.ReturnItemInput{{ProductID: "prod-1", Quantity: dec("6")}})
	require.NoError(t, err)

	// Todo devuelto: la suma de créditos nunca excede el total de la venta.
	credits, err := f.uc.ListCredits(ctx, 100, 0)
	require.NoError(t, err)
	sum := decimal.Zero
	for _, c := range credits {
		sum = sum.Add(c.Amount)
	}
	assert.True(t, sum.Equal(dec("50.00")))

	_, err = f.uc.ProcessReturn(ctx, sale.ID, []sales.ReturnItemInput{{ProductID: "prod-1", Quantity: dec("1")}})
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, domain.CodeOverReturn, domain.CodeOf(err))
}

func TestProcessReturn_SinDerivaEnReembolsosParciales(t *testing.T) {
	f := newReconciler(t)
	sale := completedSale(t, f, "prod-1", "3", "0.07")
	ctx := context.Background()

	// Tres devoluciones de 1 unidad a 0.07: la suma debe ser exactamente 0.21.
	sum := decimal.Zero
	for i := 0; i < 3; i++ {
		res, err := f.uc.ProcessReturn(ctx, sale.ID, []sales.ReturnItemInput{{ProductID: "prod-1", Quantity: dec("1")}})
		require.NoError(t, err)
		sum = sum.Add(res.Credit.Amount)
	}
	assert.True(t, sum.Equal(sale.TotalValue), "suma de reembolsos %s == total %s", sum, sale.TotalValue)
}

func TestProcessReturn_ConsolidaLineasDuplicadas(t *testing.T) {
	f := newReconciler(t)
	sale := completedSale(t, f, "prod-1", "6", "2.00")
	ctx := context.Background()

	// El mismo producto repetido en la petición cuenta contra el mismo saldo.
	_, err := f.uc.ProcessReturn(ctx, sale.ID, []sales.ReturnItemInput{
		{ProductID: "prod-1", Quantity: dec("3")},
		{ProductID: "prod-1", Quantity: dec("4")},
	})
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, domain.CodeOverReturn, domain.CodeOf(err))

	res, err := f.uc.ProcessReturn(ctx, sale.ID, []sales.ReturnItemInput{
		{ProductID: "prod-1", Quantity: dec("3")},
		{ProductID: "prod-1", Quantity: dec("3")},
	})
	require.NoError(t, err)
	require.Len(t, res.Return.Items, 1)
	assert.True(t, res.Return.Items[0].Quantity.Equal(dec("6")))
	assert.True(t, res.Credit.Amount.Equal(dec("12.00")))
}

func TestProcessReturn_VentaNoCompletada(t *testing.T) {
	f := newReconciler(t)
	ctx := context.Background()

	pending, err := f.uc.CreateSale(ctx, sales.CreateSaleInput{
		ClientID: "cli-1",
		Items:    []sales.SaleItemInput{{ProductID: "p", Quantity: dec("2"), UnitPrice: dec("1")}},
	})
	require.NoError(t, err)

	_, err = f.uc.ProcessReturn(ctx, pending.ID, []sales.ReturnItemInput{{ProductID: "p", Quantity: dec("1")}})
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, domain.CodeSaleNotCompleted, domain.CodeOf(err))

	cancelled, err := f.uc.CancelSale(ctx, pending.ID)
	require.NoError(t, err)
	_, err = f.uc.ProcessReturn(ctx, cancelled.ID, []sales.ReturnItemInput{{ProductID: "p", Quantity: dec("1")}})
	require.ErrorIs(t, err, domain.ErrConflict)

	// Ni devolución ni crédito quedaron registrados.
	assert.Empty(t, f.tx.returns.returns)
	assert.Empty(t, f.tx.credits.order)
}

func TestProcessReturn_VentaNoEncontrada(t *testing.T) {
	f := newReconciler(t)

	_, err := f.uc.ProcessReturn(context.Background(), "no-existe", []sales.ReturnItemInput{
		{ProductID: "p", Quantity: dec("1")},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, domain.CodeSaleNotFound, domain.CodeOf(err))
	assert.Empty(t, f.tx.returns.returns)
}

func TestProcessReturn_ClienteInexistente(t *testing.T) {
	f := newReconciler(t)
	sale := completedSale(t, f, "prod-1", "10", "5.00")
	ctx := context.Background()

	delete(f.tx.clients.clients, "cli-1")

	_, err := f.uc.ProcessReturn(ctx, sale.ID, []sales.ReturnItemInput{
		{ProductID: "prod-1", Quantity: dec("2")},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, domain.CodeClientNotFound, domain.CodeOf(err))

	// Sin cliente no se emite nada: ni devolución, ni crédito, ni bookkeeping.
	assert.Empty(t, f.tx.returns.returns)
	assert.Empty(t, f.tx.credits.order)
	stored, err := f.tx.sales.GetByID(sale.ID)
	require.NoError(t, err)
	assert.True(t, stored.Items[0].ReturnedQuantity.IsZero())
}

func TestProcessReturn_ProductoFueraDeLaVenta(t *testing.T) {
	f := newReconciler(t)
	sale := completedSale(t, f, "prod-1", "5", "1.00")

	_, err := f.uc.ProcessReturn(context.Background(), sale.ID, []sales.ReturnItemInput{
		{ProductID: "otro-producto", Quantity: dec("1")},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, domain.CodeProductNotInSale, domain.CodeOf(err))
}

func TestProcessReturn_ActualizaAcumuladosDelCliente(t *testing.T) {
	f := newReconciler(t)
	sale := completedSale(t, f, "prod-1", "10", "5.00")

	_, err := f.uc.ProcessReturn(context.Background(), sale.ID, []sales.ReturnItemInput{
		{ProductID: "prod-1", Quantity: dec("2")},
	})
	require.NoError(t, err)

	client, err := f.tx.clients.GetByID("cli-1")
	require.NoError(t, err)
	assert.True(t, client.TotalReturns.Equal(dec("10.00")))

	// confirmación + devolución
	events, err := f.tx.history.ListByClient("cli-1", 100, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, entity.ClientEventReturn, events[1].EventType)
}

func TestListReturns_PorVenta(t *testing.T) {
	f := newReconciler(t)
	sale := completedSale(t, f, "prod-1", "10", "5.00")
	otherSale := completedSale(t, f, "prod-1", "3", "5.00")
	ctx := context.Background()

	_, err := f.uc.ProcessReturn(ctx, sale.ID, []sales.ReturnItemInput{{ProductID: "prod-1", Quantity: dec("2")}})
	require.NoError(t, err)
	_, err = f.uc.ProcessReturn(ctx, sale.ID, []sales.ReturnItemInput{{ProductID: "prod-1", Quantity: dec("1")}})
	require.NoError(t, err)
	_, err = f.uc.ProcessReturn(ctx, otherSale.ID, []sales.ReturnItemInput{{ProductID: "prod-1", Quantity: dec("1")}})
	require.NoError(t, err)

	returns, err := f.uc.ListReturns(ctx, sale.ID)
	require.NoError(t, err)
	require.Len(t, returns, 2)
	assert.True(t, returns[0].ValueRefunded.Equal(dec("10.00")))
	assert.True(t, returns[1].ValueRefunded.Equal(dec("5.00")))

	_, err = f.uc.ListReturns(ctx, "no-existe")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListClientCredits(t *testing.T) {
	f := newReconciler(t)
	sale := completedSale(t, f, "prod-1", "10", "5.00")
	ctx := context.Background()

	_, err := f.uc.ProcessReturn(ctx, sale.ID, []sales.ReturnItemInput{{ProductID: "prod-1", Quantity: dec("2")}})
	require.NoError(t, err)

	credits, err := f.uc.ListClientCredits(ctx, "cli-1", 100, 0)
	require.NoError(t, err)
	require.Len(t, credits, 1)
	assert.Equal(t, "cli-1", credits[0].ClientID)

	_, err = f.uc.ListClientCredits(ctx, "no-existe", 100, 0)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, domain.CodeClientNotFound, domain.CodeOf(err))
}

// ─── ApplyCredit / ExpireCredit ──────────────────────────────────────────────

func TestApplyCredit_ParcialYTotal(t *testing.T) {
	f := newReconciler(t)
	sale := completedSale(t, f, "prod-1", "10", "5.00")
	ctx := context.Background()

	res, err := f.uc.ProcessReturn(ctx, sale.ID, []sales.ReturnItemInput{{ProductID: "prod-1", Quantity: dec("4")}})
	require.NoError(t, err)
	creditID := res.Credit.ID

	// Consumo parcial: saldo reducido, sigue abierto.
	credit, err := f.uc.ApplyCredit(ctx, creditID, dec("15.00"))
	require.NoError(t, err)
	assert.True(t, credit.Amount.Equal(dec("5.00")))
	assert.Equal(t, entity.CreditStatusOpen, credit.Status)

	// Consumo del resto: pasa a applied.
	credit, err = f.uc.ApplyCredit(ctx, creditID, dec("5.00"))
	require.NoError(t, err)
	assert.True(t, credit.Amount.IsZero())
	assert.Equal(t, entity.CreditStatusApplied, credit.Status)

	// applied es terminal.
	_, err = f.uc.ApplyCredit(ctx, creditID, dec("1.00"))
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, domain.CodeCreditNotOpen, domain.CodeOf(err))
}

func TestApplyCredit_Fallos(t *testing.T) {
	f := newReconciler(t)
	sale := completedSale(t, f, "prod-1", "10", "5.00")
	ctx := context.Background()

	res, err := f.uc.ProcessReturn(ctx, sale.ID, []sales.ReturnItemInput{{ProductID: "prod-1", Quantity: dec("2")}})
	require.NoError(t, err)

	_, err = f.uc.ApplyCredit(ctx, "no-existe", dec("1"))
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, domain.CodeCreditNotFound, domain.CodeOf(err))

	_, err = f.uc.ApplyCredit(ctx, res.Credit.ID, dec("0"))
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	// Consumir más que el saldo no está permitido.
	_, err = f.uc.ApplyCredit(ctx, res.Credit.ID, dec("999"))
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, domain.CodeCreditExceeded, domain.CodeOf(err))
}

func TestExpireCredit(t *testing.T) {
	f := newReconciler(t)
	sale := completedSale(t, f, "prod-1", "10", "5.00")
	ctx := context.Background()

	res, err := f.uc.ProcessReturn(ctx, sale.ID, []sales.ReturnItemInput{{ProductID: "prod-1", Quantity: dec("1")}})
	require.NoError(t, err)

	credit, err := f.uc.ExpireCredit(ctx, res.Credit.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CreditStatusExpired, credit.Status)

	// expired es terminal: ni consumir ni re-expirar.
	_, err = f.uc.ApplyCredit(ctx, credit.ID, dec("1"))
	require.ErrorIs(t, err, domain.ErrConflict)
	_, err = f.uc.ExpireCredit(ctx, credit.ID)
	require.ErrorIs(t, err, domain.ErrConflict)
}
