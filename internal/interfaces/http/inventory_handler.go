package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/breadcraft/backoffice/internal/application/dto"
	"github.com/breadcraft/backoffice/internal/application/inventory"
)

// InventoryHandler maneja las peticiones HTTP del libro de inventario.
type InventoryHandler struct {
	uc *inventory.LedgerUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.LedgerUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// CreateMaterial alta de materia prima.
func (h *InventoryHandler) CreateMaterial(c *fiber.Ctx) error {
	var in dto.CreateRawMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	material, err := h.uc.CreateRawMaterial(c.Context(), inventory.CreateMaterialInput{
		Name:            in.Name,
		Unit:            in.Unit,
		Quantity:        in.Quantity,
		MinimumQuantity: in.MinimumQuantity,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewRawMaterialResponse(material))
}

// GetMaterial obtiene una materia prima por ID.
func (h *InventoryHandler) GetMaterial(c *fiber.Ctx) error {
	material, err := h.uc.GetRawMaterial(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewRawMaterialResponse(material))
}

// ListMaterials lista materias primas.
func (h *InventoryHandler) ListMaterials(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	materials, err := h.uc.ListRawMaterials(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.RawMaterialResponse, 0, len(materials))
	for i := range materials {
		out = append(out, dto.NewRawMaterialResponse(&materials[i]))
	}
	return c.JSON(out)
}

// RecordConsumption registra un lote de producción: descuenta stock, crea el
// lote y emite alerta si el saldo quedó bajo el mínimo. Todo o nada.
func (h *InventoryHandler) RecordConsumption(c *fiber.Ctx) error {
	var in dto.RecordConsumptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.RecordConsumption(c.Context(), inventory.ConsumptionInput{
		MaterialID: c.Params("id"),
		ProductID:  in.ProductID,
		Quantity:   in.Quantity,
		Losses:     in.Losses,
		Status:     in.Status,
	})
	if err != nil {
		return respondError(c, err)
	}
	out := dto.ConsumptionResponse{
		Material: dto.NewRawMaterialResponse(result.Material),
		Batch:    dto.NewProductionBatchResponse(result.Batch),
	}
	if result.Alert != nil {
		out.Alert = &dto.InventoryAlertResponse{
			ID:         result.Alert.ID,
			MaterialID: result.Alert.MaterialID,
			Message:    result.Alert.Message,
			CreatedAt:  result.Alert.CreatedAt,
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Restock repone stock de una materia prima. Nunca emite alertas.
func (h *InventoryHandler) Restock(c *fiber.Ctx) error {
	var in dto.RestockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	material, err := h.uc.Restock(c.Context(), inventory.RestockInput{
		MaterialID: c.Params("id"),
		Quantity:   in.Quantity,
		UnitPrice:  in.UnitPrice,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewRawMaterialResponse(material))
}

// ListBatches lista el historial de lotes de producción.
func (h *InventoryHandler) ListBatches(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	batches, err := h.uc.ListBatches(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ProductionBatchResponse, 0, len(batches))
	for i := range batches {
		out = append(out, dto.NewProductionBatchResponse(&batches[i]))
	}
	return c.JSON(out)
}

// ListMaterialBatches lista los lotes que consumieron una materia prima.
func (h *InventoryHandler) ListMaterialBatches(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	batches, err := h.uc.ListBatchesByMaterial(c.Context(), c.Params("id"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ProductionBatchResponse, 0, len(batches))
	for i := range batches {
		out = append(out, dto.NewProductionBatchResponse(&batches[i]))
	}
	return c.JSON(out)
}

// ListAlerts lista el historial de alertas en orden de inserción.
func (h *InventoryHandler) ListAlerts(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	alerts, err := h.uc.ListAlerts(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.InventoryAlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.InventoryAlertResponse{
			ID:         a.ID,
			MaterialID: a.MaterialID,
			Message:    a.Message,
			CreatedAt:  a.CreatedAt,
		})
	}
	return c.JSON(out)
}
