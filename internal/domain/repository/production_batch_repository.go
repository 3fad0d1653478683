package repository

import "github.com/breadcraft/backoffice/internal/domain/entity"

// ProductionBatchRepository puerto para el historial de lotes (append-only).
type ProductionBatchRepository interface {
	Create(batch *entity.ProductionBatch) error
	List(limit, offset int) ([]entity.ProductionBatch, error)
	ListByMaterial(materialID string, limit, offset int) ([]entity.ProductionBatch, error)
}
