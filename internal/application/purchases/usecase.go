package purchases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/breadcraft/backoffice/internal/domain"
	"github.com/breadcraft/backoffice/internal/domain/entity"
	"github.com/breadcraft/backoffice/internal/domain/repository"
)

// ProcurementUseCase registra compras a proveedores a partir de documentos
// fiscales ya parseados y las lleva por su ciclo de vida: una compra nace
// pending y, al completarse, cada línea repone el stock de su materia prima y
// actualiza el último precio de compra. La reposición nunca emite alertas.
type ProcurementUseCase struct {
	txRunner     TxRunner
	purchaseRepo repository.PurchaseRepository
	supplierRepo repository.SupplierRepository
	materialRepo repository.RawMaterialRepository
}

// NewProcurementUseCase construye el caso de uso.
func NewProcurementUseCase(
	txRunner TxRunner,
	purchaseRepo repository.PurchaseRepository,
	supplierRepo repository.SupplierRepository,
	materialRepo repository.RawMaterialRepository,
) *ProcurementUseCase {
	return &ProcurementUseCase{
		txRunner:     txRunner,
		purchaseRepo: purchaseRepo,
		supplierRepo: supplierRepo,
		materialRepo: materialRepo,
	}
}

// CreateSupplierInput entrada para dar de alta un proveedor.
type CreateSupplierInput struct {
	Name    string
	TaxID   string
	Address string
	Phone   string
	Email   string
}

// CreateSupplier da de alta un proveedor. TaxID es único.
func (uc *ProcurementUseCase) CreateSupplier(ctx context.Context, input CreateSupplierInput) (*entity.Supplier, error) {
	if input.Name == "" || input.TaxID == "" {
		return nil, domain.NewInvalidInput(domain.CodeInvalidItems, "")
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      input.Name,
		TaxID:     input.TaxID,
		Address:   input.Address,
		Phone:     input.Phone,
		Email:     input.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// GetSupplier obtiene un proveedor por ID.
func (uc *ProcurementUseCase) GetSupplier(ctx context.Context, id string) (*entity.Supplier, error) {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.NewNotFound(domain.CodeSupplierNotFound, id)
	}
	return supplier, nil
}

// ListSuppliers lista proveedores.
func (uc *ProcurementUseCase) ListSuppliers(ctx context.Context, limit, offset int) ([]entity.Supplier, error) {
	return uc.supplierRepo.List(limit, offset)
}

// PurchaseItemInput línea de compra ya extraída del documento.
type PurchaseItemInput struct {
	RawMaterialID string
	Description   string
	Quantity      decimal.Decimal
	Unit          string
	UnitPrice     decimal.Decimal
}

// RegisterPurchaseInput entrada para registrar una compra. Las líneas llegan
// ya parseadas del documento fiscal (XML o PDF); el parseo no ocurre aquí.
type RegisterPurchaseInput struct {
	SupplierID     string
	DocumentType   string
	DocumentNumber string
	Items          []PurchaseItemInput
}

// RegisterPurchase registra una compra en estado pending. TotalValue se
// calcula como Σ cantidad * precio unitario con aritmética decimal exacta.
// Cada línea debe referenciar una materia prima existente; el documento
// (tipo + número) identifica la compra y no puede registrarse dos veces.
func (uc *ProcurementUseCase) RegisterPurchase(ctx context.Context, input RegisterPurchaseInput) (*entity.Purchase, error) {
	if input.DocumentType != entity.PurchaseDocumentXML && input.DocumentType != entity.PurchaseDocumentPDF {
		return nil, domain.NewInvalidInput(domain.CodeInvalidDocument, input.DocumentNumber)
	}
	if input.DocumentNumber == "" {
		return nil, domain.NewInvalidInput(domain.CodeInvalidDocument, input.SupplierID)
	}
	if len(input.Items) == 0 {
		return nil, domain.NewInvalidInput(domain.CodeInvalidItems, input.DocumentNumber)
	}
	for _, item := range input.Items {
		if item.RawMaterialID == "" {
			return nil, domain.NewInvalidInput(domain.CodeInvalidItems, input.DocumentNumber)
		}
		if !item.Quantity.GreaterThan(decimal.Zero) || item.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.NewInvalidInput(domain.CodeInvalidQuantity, item.RawMaterialID)
		}
	}

	supplier, err := uc.supplierRepo.GetByID(input.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.NewNotFound(domain.CodeSupplierNotFound, input.SupplierID)
	}
	for _, item := range input.Items {
		material, err := uc.materialRepo.GetByID(item.RawMaterialID)
		if err != nil {
			return nil, err
		}
		if material == nil {
			return nil, domain.NewNotFound(domain.CodeMaterialNotFound, item.RawMaterialID)
		}
	}

	now := time.Now()
	total := decimal.Zero
	items := make([]entity.PurchaseItem, 0, len(input.Items))
	for _, item := range input.Items {
		total = total.Add(item.Quantity.Mul(item.UnitPrice))
		items = append(items, entity.PurchaseItem{
			RawMaterialID: item.RawMaterialID,
			Description:   item.Description,
			Quantity:      item.Quantity,
			Unit:          item.Unit,
			UnitPrice:     item.UnitPrice,
		})
	}

	purchase := &entity.Purchase{
		ID:             uuid.New().String(),
		SupplierID:     input.SupplierID,
		DocumentType:   input.DocumentType,
		DocumentNumber: input.DocumentNumber,
		Items:          items,
		TotalValue:     total,
		Status:         entity.PurchaseStatusPending,
		PurchaseDate:   now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.purchaseRepo.Create(purchase); err != nil {
		return nil, err
	}
	return purchase, nil
}

// CompletePurchase pasa la compra de pending a completed (evento externo:
// la mercancía llegó). Cada línea incrementa el stock de su materia prima y
// actualiza su último precio de compra, todo en la misma transacción: si una
// materia desapareció, ninguna reposición se persiste.
func (uc *ProcurementUseCase) CompletePurchase(ctx context.Context, purchaseID string) (*entity.Purchase, error) {
	now := time.Now()
	var completed *entity.Purchase

	err := uc.txRunner.Run(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		materialRepo repository.RawMaterialRepository,
	) error {
		purchase, err := purchaseRepo.GetForUpdate(purchaseID)
		if err != nil {
			return err
		}
		if purchase == nil {
			return domain.NewNotFound(domain.CodePurchaseNotFound, purchaseID)
		}
		if purchase.Status != entity.PurchaseStatusPending {
			return domain.NewConflict(domain.CodePurchaseNotPending, purchaseID)
		}

		// Bloquear y validar todas las materias antes de mutar: una línea
		// huérfana hace fallar la compra completa sin reposiciones parciales.
		for _, item := range purchase.Items {
			material, err := materialRepo.GetForUpdate(item.RawMaterialID)
			if err != nil {
				return err
			}
			if material == nil {
				return domain.NewNotFound(domain.CodeMaterialNotFound, item.RawMaterialID)
			}
		}

		for _, item := range purchase.Items {
			material, err := materialRepo.GetForUpdate(item.RawMaterialID)
			if err != nil {
				return err
			}
			material.Quantity = material.Quantity.Add(item.Quantity)
			material.LastPurchasePrice = item.UnitPrice
			material.LastPurchaseDate = &now
			material.UpdatedAt = now
			if err := materialRepo.Update(material); err != nil {
				return err
			}
		}

		purchase.Status = entity.PurchaseStatusCompleted
		purchase.UpdatedAt = now
		if err := purchaseRepo.Update(purchase); err != nil {
			return err
		}
		completed = purchase
		return nil
	})
	if err != nil {
		return nil, err
	}
	return completed, nil
}

// CancelPurchase pasa la compra de pending a cancelled (terminal).
// El stock no se toca: solo las compras completadas reponen.
func (uc *ProcurementUseCase) CancelPurchase(ctx context.Context, purchaseID string) (*entity.Purchase, error) {
	now := time.Now()
	var cancelled *entity.Purchase

	err := uc.txRunner.Run(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		_ repository.RawMaterialRepository,
	) error {
		purchase, err := purchaseRepo.GetForUpdate(purchaseID)
		if err != nil {
			return err
		}
		if purchase == nil {
			return domain.NewNotFound(domain.CodePurchaseNotFound, purchaseID)
		}
		if purchase.Status != entity.PurchaseStatusPending {
			return domain.NewConflict(domain.CodePurchaseNotPending, purchaseID)
		}
		purchase.Status = entity.PurchaseStatusCancelled
		purchase.UpdatedAt = now
		if err := purchaseRepo.Update(purchase); err != nil {
			return err
		}
		cancelled = purchase
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

// GetPurchase obtiene una compra con sus líneas.
func (uc *ProcurementUseCase) GetPurchase(ctx context.Context, id string) (*entity.Purchase, error) {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.NewNotFound(domain.CodePurchaseNotFound, id)
	}
	return purchase, nil
}

// ListPurchases lista compras.
func (uc *ProcurementUseCase) ListPurchases(ctx context.Context, limit, offset int) ([]entity.Purchase, error) {
	return uc.purchaseRepo.List(limit, offset)
}

// ListSupplierPurchases lista las compras de un proveedor.
func (uc *ProcurementUseCase) ListSupplierPurchases(ctx context.Context, supplierID string, limit, offset int) ([]entity.Purchase, error) {
	supplier, err := uc.supplierRepo.GetByID(supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.NewNotFound(domain.CodeSupplierNotFound, supplierID)
	}
	return uc.purchaseRepo.ListBySupplier(supplierID, limit, offset)
}
