package inventory

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

// LedgerUseCase es el libro de stock de materias primas: aplica consumos de
// lotes de producción, reposiciones y emite alertas de stock bajo. Todas las
// operaciones sobre una materia se serializan con bloqueo de fila
// (SELECT FOR UPDATE) dentro de la transacción del TxRunner.
type LedgerUseCase struct {
	txRunner     TxRunner
	materialRepo repository.RawMaterialRepository
	batchRepo    repository.ProductionBatchRepository
	alertRepo    repository.InventoryAlertRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	txRunner TxRunner,
	materialRepo repository.RawMaterialRepository,
	batchRepo repository.ProductionBatchRepository,
	alertRepo repository.InventoryAlertRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:     txRunner,
		materialRepo: materialRepo,
		batchRepo:    batchRepo,
		alertRepo:    alertRepo,
	}
}

// ConsumptionInput entrada para registrar el consumo de un lote de producción.
type ConsumptionInput struct {
	MaterialID string
	ProductID  string
	Quantity   decimal.Decimal
	Losses     decimal.Decimal
	Status     string
}

// ConsumptionResult resultado transaccional del consumo: material actualizado,
// lote creado y la alerta si se cruzó el mínimo (nil si no).
type ConsumptionResult struct {
	Material *entity.RawMaterial
	Batch    *entity.ProductionBatch
	Alert    *entity.InventoryAlert
}

// RecordConsumption descuenta materia prima por un lote de producción.
// El stock PUEDE quedar negativo: el sobre-consumo no se rechaza, solo se
// alerta. Si tras el descuento quantity < minimumQuantity se emite exactamente
// una alerta nueva; alertas repetidas para lotes sucesivos no se deduplican.
// Lote, descuento y alerta se confirman como unidad atómica.
func (uc *LedgerUseCase) RecordConsumption(ctx context.Context, input ConsumptionInput) (*ConsumptionResult, error) {
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.NewInvalidInput(domain.CodeInvalidQuantity, input.MaterialID)
	}
	if input.Losses.LessThan(decimal.Zero) {
		return nil, domain.NewInvalidInput(domain.CodeInvalidQuantity, input.MaterialID)
	}
	status := input.Status
	if status == "" {
		status = entity.BatchStatusCompleted
	}

	now := time.Now()
	var result ConsumptionResult

	err := uc.txRunner.Run(ctx, func(
		materialRepo repository.RawMaterialRepository,
		batchRepo repository.ProductionBatchRepository,
		alertRepo repository.InventoryAlertRepository,
	) error {
		// Releer el agregado dentro de la tx: el bloqueo de fila serializa
		// los consumos concurrentes sobre la misma materia.
		material, err := materialRepo.GetForUpdate(input.MaterialID)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.NewNotFound(domain.CodeMaterialNotFound, input.MaterialID)
		}

		material.Quantity = material.Quantity.Sub(input.Quantity)
		material.UpdatedAt = now
		if err := materialRepo.Update(material); err != nil {
			return err
		}

		batch := &entity.ProductionBatch{
			ID:               uuid.New().String(),
			ProductID:        input.ProductID,
			RawMaterialID:    material.ID,
			QuantityConsumed: input.Quantity,
			Losses:           input.Losses,
			Status:           status,
			ProductionDate:   now,
			CreatedAt:        now,
		}
		if err := batchRepo.Create(batch); err != nil {
			return err
		}

		result = ConsumptionResult{Material: material, Batch: batch}

		if material.BelowMinimum() {
			alert := &entity.InventoryAlert{
				ID:         uuid.New().String(),
				MaterialID: material.ID,
				Message: fmt.Sprintf("Stock bajo de %s: quedan %s %s (mínimo %s)",
					material.Name, material.Quantity.String(), material.Unit, material.MinimumQuantity.String()),
				CreatedAt: now,
			}
			if err := alertRepo.Create(alert); err != nil {
				return err
			}
			result.Alert = alert
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// RestockInput entrada para una reposición de materia prima.
// UnitPrice es opcional: si viene, se actualiza el último precio de compra.
type RestockInput struct {
	MaterialID string
	Quantity   decimal.Decimal
	UnitPrice  *decimal.Decimal
}

// Restock incrementa el stock de una materia prima. Nunca emite alertas.
func (uc *LedgerUseCase) Restock(ctx context.Context, input RestockInput) (*entity.RawMaterial, error) {
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.NewInvalidInput(domain.CodeInvalidQuantity, input.MaterialID)
	}
	if input.UnitPrice != nil && input.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.NewInvalidInput(domain.CodeInvalidQuantity, input.MaterialID)
	}

	now := time.Now()
	var updated *entity.RawMaterial

	err := uc.txRunner.Run(ctx, func(
		materialRepo repository.RawMaterialRepository,
		_ repository.ProductionBatchRepository,
		_ repository.InventoryAlertRepository,
	) error {
		material, err := materialRepo.GetForUpdate(input.MaterialID)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.NewNotFound(domain.CodeMaterialNotFound, input.MaterialID)
		}
		material.Quantity = material.Quantity.Add(input.Quantity)
		if input.UnitPrice != nil {
			material.LastPurchasePrice = *input.UnitPrice
			material.LastPurchaseDate = &now
		}
		material.UpdatedAt = now
		if err := materialRepo.Update(material); err != nil {
			return err
		}
		updated = material
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// CreateMaterialInput entrada para dar de alta una materia prima.
type CreateMaterialInput struct {
	Name            string
	Unit            string
	Quantity        decimal.Decimal
	MinimumQuantity decimal.Decimal
}

// CreateRawMaterial da de alta una materia prima con su umbral de alerta.
func (uc *LedgerUseCase) CreateRawMaterial(ctx context.Context, input CreateMaterialInput) (*entity.RawMaterial, error) {
	if input.Name == "" {
		return nil, domain.NewInvalidInput(domain.CodeInvalidItems, "")
	}
	if input.Quantity.LessThan(decimal.Zero) || input.MinimumQuantity.LessThan(decimal.Zero) {
		return nil, domain.NewInvalidInput(domain.CodeInvalidQuantity, "")
	}
	now := time.Now()
	material := &entity.RawMaterial{
		ID:              uuid.New().String(),
		Name:            input.Name,
		Unit:            input.Unit,
		Quantity:        input.Quantity,
		MinimumQuantity: input.MinimumQuantity,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.materialRepo.Create(material); err != nil {
		return nil, err
	}
	return material, nil
}

// GetRawMaterial obtiene una materia prima por ID.
func (uc *LedgerUseCase) GetRawMaterial(ctx context.Context, id string) (*entity.RawMaterial, error) {
	material, err := uc.materialRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.NewNotFound(domain.CodeMaterialNotFound, id)
	}
	return material, nil
}

// ListRawMaterials lista materias primas.
func (uc *LedgerUseCase) ListRawMaterials(ctx context.Context, limit, offset int) ([]entity.RawMaterial, error) {
	return uc.materialRepo.List(limit, offset)
}

// ListBatches lista el historial de lotes de producción.
func (uc *LedgerUseCase) ListBatches(ctx context.Context, limit, offset int) ([]entity.ProductionBatch, error) {
	return uc.batchRepo.List(limit, offset)
}

// ListBatchesByMaterial lista los lotes que consumieron una materia prima.
func (uc *LedgerUseCase) ListBatchesByMaterial(ctx context.Context, materialID string, limit, offset int) ([]entity.ProductionBatch, error) {
	material, err := uc.materialRepo.GetByID(materialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.NewNotFound(domain.CodeMaterialNotFound, materialID)
	}
	return uc.batchRepo.ListByMaterial(materialID, limit, offset)
}

// ListAlerts devuelve el log de alertas en orden de inserción.
func (uc *LedgerUseCase) ListAlerts(ctx context.Context, limit, offset int) ([]entity.InventoryAlert, error) {
	return uc.alertRepo.List(limit, offset)
}
