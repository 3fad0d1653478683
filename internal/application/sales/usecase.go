package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/breadcraft/backoffice/internal/domain"
	"github.com/breadcraft/backoffice/internal/domain/entity"
	"github.com/breadcraft/backoffice/internal/domain/repository"
)

// ReconcilerUseCase mantiene consistentes ventas, devoluciones y créditos de
// tienda: cada devolución contra una venta completada emite exactamente un
// crédito por el valor reembolsado, valorado al precio original de la línea.
type ReconcilerUseCase struct {
	txRunner   TxRunner
	saleRepo   repository.SaleRepository
	returnRepo repository.SaleReturnRepository
	creditRepo repository.CreditRepository
	clientRepo repository.ClientRepository
}

// NewReconcilerUseCase construye el caso de uso.
func NewReconcilerUseCase(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	returnRepo repository.SaleReturnRepository,
	creditRepo repository.CreditRepository,
	clientRepo repository.ClientRepository,
) *ReconcilerUseCase {
	return &ReconcilerUseCase{
		txRunner:   txRunner,
		saleRepo:   saleRepo,
		returnRepo: returnRepo,
		creditRepo: creditRepo,
		clientRepo: clientRepo,
	}
}

// SaleItemInput línea de una venta nueva.
type SaleItemInput struct {
	ProductID string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// CreateSaleInput entrada para crear una venta.
type CreateSaleInput struct {
	ClientID string
	Items    []SaleItemInput
}

// CreateSale crea una venta en estado pending. TotalValue se calcula como
// Σ cantidad * precio unitario con aritmética decimal exacta.
func (uc *ReconcilerUseCase) CreateSale(ctx context.Context, input CreateSaleInput) (*entity.Sale, error) {
	if len(input.Items) == 0 {
		return nil, domain.NewInvalidInput(domain.CodeInvalidItems, input.ClientID)
	}
	for _, item := range input.Items {
		if item.ProductID == "" {
			return nil, domain.NewInvalidInput(domain.CodeInvalidItems, input.ClientID)
		}
		if !item.Quantity.GreaterThan(decimal.Zero) || item.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.NewInvalidInput(domain.CodeInvalidQuantity, item.ProductID)
		}
	}

	client, err := uc.clientRepo.GetByID(input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.NewNotFound(domain.CodeClientNotFound, input.ClientID)
	}

	now := time.Now()
	total := decimal.Zero
	items := make([]entity.SaleItem, 0, len(input.Items))
	for _, item := range input.Items {
		total = total.Add(item.Quantity.Mul(item.UnitPrice))
		items = append(items, entity.SaleItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	sale := &entity.Sale{
		ID:         uuid.New().String(),
		ClientID:   input.ClientID,
		Items:      items,
		TotalValue: total,
		Status:     entity.SaleStatusPending,
		SaleDate:   now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.saleRepo.Create(sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// ConfirmSale pasa la venta de pending a completed (evento externo: pago).
// Actualiza el acumulado de compras del cliente y registra el evento en su
// historial, en la misma transacción.
func (uc *ReconcilerUseCase) ConfirmSale(ctx context.Context, saleID string) (*entity.Sale, error) {
	now := time.Now()
	var confirmed *entity.Sale

	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		_ repository.SaleReturnRepository,
		_ repository.CreditRepository,
		clientRepo repository.ClientRepository,
		historyRepo repository.ClientHistoryRepository,
	) error {
		sale, err := saleRepo.GetForUpdate(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.NewNotFound(domain.CodeSaleNotFound, saleID)
		}
		if sale.Status != entity.SaleStatusPending {
			return domain.NewConflict(domain.CodeSaleNotPending, saleID)
		}

		// El cliente se carga antes de escribir nada: si desapareció, la
		// confirmación falla completa en vez de perder el acumulado.
		client, err := clientRepo.GetForUpdate(sale.ClientID)
		if err != nil {
			return err
		}
		if client == nil {
			return domain.NewNotFound(domain.CodeClientNotFound, sale.ClientID)
		}

		sale.Status = entity.SaleStatusCompleted
		sale.UpdatedAt = now
		if err := saleRepo.Update(sale); err != nil {
			return err
		}

		client.TotalPurchases = client.TotalPurchases.Add(sale.TotalValue)
		client.UpdatedAt = now
		if err := clientRepo.Update(client); err != nil {
			return err
		}
		event := &entity.ClientHistory{
			ID:          uuid.New().String(),
			ClientID:    client.ID,
			EventType:   entity.ClientEventPurchase,
			Description: fmt.Sprintf("Venta %s confirmada", sale.ID),
			Amount:      sale.TotalValue,
			CreatedAt:   now,
		}
		if err := historyRepo.Create(event); err != nil {
			return err
		}
		confirmed = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return confirmed, nil
}

// CancelSale pasa la venta de pending a cancelled (estado terminal).
func (uc *ReconcilerUseCase) CancelSale(ctx context.Context, saleID string) (*entity.Sale, error) {
	now := time.Now()
	var cancelled *entity.Sale

	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		_ repository.SaleReturnRepository,
		_ repository.CreditRepository,
		_ repository.ClientRepository,
		_ repository.ClientHistoryRepository,
	) error {
		sale, err := saleRepo.GetForUpdate(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.NewNotFound(domain.CodeSaleNotFound, saleID)
		}
		if sale.Status != entity.SaleStatusPending {
			return domain.NewConflict(domain.CodeSaleNotPending, saleID)
		}
		sale.Status = entity.SaleStatusCancelled
		sale.UpdatedAt = now
		if err := saleRepo.Update(sale); err != nil {
			return err
		}
		cancelled = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

// ReturnItemInput línea devuelta en una devolución.
type ReturnItemInput struct {
	ProductID string
	Quantity  decimal.Decimal
}

// ReturnResult resultado transaccional de una devolución: venta actualizada,
// devolución creada y el crédito emitido (amount == valueRefunded, siempre).
type ReturnResult struct {
	Sale   *entity.Sale
	Return *entity.SaleReturn
	Credit *entity.Credit
}

// ProcessReturn procesa una devolución contra una venta completada.
// La cantidad devuelta por línea se valida acumulada a través de todas las
// devoluciones previas de la venta: una segunda devolución no puede exceder lo
// que queda por devolver. El valor reembolsado se calcula al precio unitario
// original de la línea. Devolución, crédito y acumulados del cliente se
// confirman como unidad atómica; ningún efecto parcial se persiste.
func (uc *ReconcilerUseCase) ProcessReturn(ctx context.Context, saleID string, items []ReturnItemInput) (*ReturnResult, error) {
	if len(items) == 0 {
		return nil, domain.NewInvalidInput(domain.CodeInvalidItems, saleID)
	}
	// Consolidar por producto: una misma línea repetida en la petición cuenta
	// contra el mismo saldo devolvible.
	requested := make(map[string]decimal.Decimal, len(items))
	order := make([]string, 0, len(items))
	for _, item := range items {
		if item.ProductID == "" {
			return nil, domain.NewInvalidInput(domain.CodeInvalidItems, saleID)
		}
		if !item.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.NewInvalidInput(domain.CodeInvalidQuantity, item.ProductID)
		}
		if _, seen := requested[item.ProductID]; !seen {
			order = append(order, item.ProductID)
		}
		requested[item.ProductID] = requested[item.ProductID].Add(item.Quantity)
	}

	now := time.Now()
	var result ReturnResult

	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		returnRepo repository.SaleReturnRepository,
		creditRepo repository.CreditRepository,
		clientRepo repository.ClientRepository,
		historyRepo repository.ClientHistoryRepository,
	) error {
		sale, err := saleRepo.GetForUpdate(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.NewNotFound(domain.CodeSaleNotFound, saleID)
		}
		if sale.Status != entity.SaleStatusCompleted {
			return domain.NewConflict(domain.CodeSaleNotCompleted, saleID)
		}

		// El cliente se carga antes de escribir nada: si desapareció, la
		// devolución falla completa en vez de emitir un crédito huérfano.
		client, err := clientRepo.GetForUpdate(sale.ClientID)
		if err != nil {
			return err
		}
		if client == nil {
			return domain.NewNotFound(domain.CodeClientNotFound, sale.ClientID)
		}

		valueRefunded := decimal.Zero
		returnItems := make([]entity.ReturnItem, 0, len(order))
		for _, productID := range order {
			qty := requested[productID]
			line := sale.ItemByProduct(productID)
			if line == nil {
				return domain.NewInvalidInput(domain.CodeProductNotInSale, productID)
			}
			if qty.GreaterThan(line.ReturnableQuantity()) {
				return domain.NewConflict(domain.CodeOverReturn, saleID)
			}
			line.ReturnedQuantity = line.ReturnedQuantity.Add(qty)
			valueRefunded = valueRefunded.Add(qty.Mul(line.UnitPrice))
			returnItems = append(returnItems, entity.ReturnItem{ProductID: productID, Quantity: qty})
		}

		// El total de la venta no se toca; solo el bookkeeping devolvible.
		sale.UpdatedAt = now
		if err := saleRepo.Update(sale); err != nil {
			return err
		}

		ret := &entity.SaleReturn{
			ID:            uuid.New().String(),
			SaleID:        sale.ID,
			Items:         returnItems,
			ValueRefunded: valueRefunded,
			CreatedAt:     now,
		}
		if err := returnRepo.Create(ret); err != nil {
			return err
		}

		credit := &entity.Credit{
			ID:             uuid.New().String(),
			ClientID:       sale.ClientID,
			SaleID:         sale.ID,
			SourceReturnID: ret.ID,
			Amount:         valueRefunded,
			Status:         entity.CreditStatusOpen,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := creditRepo.Create(credit); err != nil {
			return err
		}

		client.TotalReturns = client.TotalReturns.Add(valueRefunded)
		client.UpdatedAt = now
		if err := clientRepo.Update(client); err != nil {
			return err
		}
		event := &entity.ClientHistory{
			ID:          uuid.New().String(),
			ClientID:    client.ID,
			EventType:   entity.ClientEventReturn,
			Description: fmt.Sprintf("Devolución sobre venta %s, crédito %s emitido", sale.ID, credit.ID),
			Amount:      valueRefunded,
			CreatedAt:   now,
		}
		if err := historyRepo.Create(event); err != nil {
			return err
		}

		result = ReturnResult{Sale: sale, Return: ret, Credit: credit}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ApplyCredit consume (total o parcialmente) un crédito abierto contra una
// venta futura. El consumo parcial reduce el saldo y deja el crédito abierto;
// el consumo total lo pasa a applied (terminal).
func (uc *ReconcilerUseCase) ApplyCredit(ctx context.Context, creditID string, amount decimal.Decimal) (*entity.Credit, error) {
	if !amount.GreaterThan(decimal.Zero) {
		return nil, domain.NewInvalidInput(domain.CodeInvalidQuantity, creditID)
	}

	now := time.Now()
	var updated *entity.Credit

	err := uc.txRunner.Run(ctx, func(
		_ repository.SaleRepository,
		_ repository.SaleReturnRepository,
		creditRepo repository.CreditRepository,
		clientRepo repository.ClientRepository,
		historyRepo repository.ClientHistoryRepository,
	) error {
		credit, err := creditRepo.GetForUpdate(creditID)
		if err != nil {
			return err
		}
		if credit == nil {
			return domain.NewNotFound(domain.CodeCreditNotFound, creditID)
		}
		if credit.Status != entity.CreditStatusOpen {
			return domain.NewConflict(domain.CodeCreditNotOpen, creditID)
		}
		if amount.GreaterThan(credit.Amount) {
			return domain.NewConflict(domain.CodeCreditExceeded, creditID)
		}

		credit.Amount = credit.Amount.Sub(amount)
		if credit.Amount.IsZero() {
			credit.Status = entity.CreditStatusApplied
		}
		credit.UpdatedAt = now
		if err := creditRepo.Update(credit); err != nil {
			return err
		}

		event := &entity.ClientHistory{
			ID:          uuid.New().String(),
			ClientID:    credit.ClientID,
			EventType:   entity.ClientEventCredit,
			Description: fmt.Sprintf("Crédito %s consumido", credit.ID),
			Amount:      amount,
			CreatedAt:   now,
		}
		if err := historyRepo.Create(event); err != nil {
			return err
		}
		updated = credit
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ExpireCredit expira manualmente un crédito abierto (terminal).
func (uc *ReconcilerUseCase) ExpireCredit(ctx context.Context, creditID string) (*entity.Credit, error) {
	now := time.Now()
	var updated *entity.Credit

	err := uc.txRunner.Run(ctx, func(
		_ repository.SaleRepository,
		_ repository.SaleReturnRepository,
		creditRepo repository.CreditRepository,
		_ repository.ClientRepository,
		_ repository.ClientHistoryRepository,
	) error {
		credit, err := creditRepo.GetForUpdate(creditID)
		if err != nil {
			return err
		}
		if credit == nil {
			return domain.NewNotFound(domain.CodeCreditNotFound, creditID)
		}
		if credit.Status != entity.CreditStatusOpen {
			return domain.NewConflict(domain.CodeCreditNotOpen, creditID)
		}
		credit.Status = entity.CreditStatusExpired
		credit.UpdatedAt = now
		if err := creditRepo.Update(credit); err != nil {
			return err
		}
		updated = credit
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetSale obtiene una venta con sus líneas.
func (uc *ReconcilerUseCase) GetSale(ctx context.Context, id string) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.NewNotFound(domain.CodeSaleNotFound, id)
	}
	return sale, nil
}

// ListSales lista ventas.
func (uc *ReconcilerUseCase) ListSales(ctx context.Context, limit, offset int) ([]entity.Sale, error) {
	return uc.saleRepo.List(limit, offset)
}

// ListCredits lista créditos.
func (uc *ReconcilerUseCase) ListCredits(ctx context.Context, limit, offset int) ([]entity.Credit, error) {
	return uc.creditRepo.List(limit, offset)
}

// ListReturns devuelve las devoluciones de una venta en orden cronológico.
func (uc *ReconcilerUseCase) ListReturns(ctx context.Context, saleID string) ([]entity.SaleReturn, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.NewNotFound(domain.CodeSaleNotFound, saleID)
	}
	return uc.returnRepo.ListBySale(saleID)
}

// ListClientCredits lista los créditos de un cliente.
func (uc *ReconcilerUseCase) ListClientCredits(ctx context.Context, clientID string, limit, offset int) ([]entity.Credit, error) {
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.NewNotFound(domain.CodeClientNotFound, clientID)
	}
	return uc.creditRepo.ListByClient(clientID, limit, offset)
}
