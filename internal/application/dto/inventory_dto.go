package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/breadcraft/backoffice/internal/domain/entity"
)

// CreateRawMaterialRequest alta de materia prima.
type CreateRawMaterialRequest struct {
	Name            string          `json:"name"`
	Unit            string          `json:"unit"`
	Quantity        decimal.Decimal `json:"quantity"`
	MinimumQuantity decimal.Decimal `json:"minimum_quantity"`
}

// RecordConsumptionRequest consumo de un lote de producción.
type RecordConsumptionRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Losses    decimal.Decimal `json:"losses"`
	Status    string          `json:"status"`
}

// RestockRequest reposición de materia prima.
type RestockRequest struct {
	Quantity  decimal.Decimal  `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// RawMaterialResponse materia prima serializada.
type RawMaterialResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Unit              string          `json:"unit"`
	Quantity          decimal.Decimal `json:"quantity"`
	MinimumQuantity   decimal.Decimal `json:"minimum_quantity"`
	LastPurchasePrice decimal.Decimal `json:"last_purchase_price"`
	LastPurchaseDate  *time.Time      `json:"last_purchase_date,omitempty"`
	BelowMinimum      bool            `json:"below_minimum"`
}

// NewRawMaterialResponse mapea la entidad al DTO.
func NewRawMaterialResponse(m *entity.RawMaterial) RawMaterialResponse {
	return RawMaterialResponse{
		ID:                m.ID,
		Name:              m.Name,
		Unit:              m.Unit,
		Quantity:          m.Quantity,
		MinimumQuantity:   m.MinimumQuantity,
		LastPurchasePrice: m.LastPurchasePrice,
		LastPurchaseDate:  m.LastPurchaseDate,
		BelowMinimum:      m.BelowMinimum(),
	}
}

// ProductionBatchResponse lote de producción serializado.
type ProductionBatchResponse struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"product_id,omitempty"`
	RawMaterialID    string          `json:"raw_material_id"`
	QuantityConsumed decimal.Decimal `json:"quantity_consumed"`
	Losses           decimal.Decimal `json:"losses"`
	Status           string          `json:"status"`
	ProductionDate   time.Time       `json:"production_date"`
}

// NewProductionBatchResponse mapea la entidad al DTO.
func NewProductionBatchResponse(b *entity.ProductionBatch) ProductionBatchResponse {
	return ProductionBatchResponse{
		ID:               b.ID,
		ProductID:        b.ProductID,
		RawMaterialID:    b.RawMaterialID,
		QuantityConsumed: b.QuantityConsumed,
		Losses:           b.Losses,
		Status:           b.Status,
		ProductionDate:   b.ProductionDate,
	}
}

// InventoryAlertResponse alerta de stock bajo serializada.
type InventoryAlertResponse struct {
	ID         string    `json:"id"`
	MaterialID string    `json:"material_id"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

// ConsumptionResponse resultado del consumo: material, lote y alerta opcional.
type ConsumptionResponse struct {
	Material RawMaterialResponse     `json:"material"`
	Batch    ProductionBatchResponse `json:"batch"`
	Alert    *InventoryAlertResponse `json:"alert,omitempty"`
}
