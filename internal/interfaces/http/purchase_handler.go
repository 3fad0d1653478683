package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/breadcraft/backoffice/internal/application/dto"
	"github.com/breadcraft/backoffice/internal/application/purchases"
)

// PurchaseHandler maneja las peticiones HTTP para proveedores y compras.
type PurchaseHandler struct {
	uc *purchases.ProcurementUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *purchases.ProcurementUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// CreateSupplier alta de proveedor.
func (h *PurchaseHandler) CreateSupplier(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	supplier, err := h.uc.CreateSupplier(c.Context(), purchases.CreateSupplierInput{
		Name:    in.Name,
		TaxID:   in.TaxID,
		Address: in.Address,
		Phone:   in.Phone,
		Email:   in.Email,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewSupplierResponse(supplier))
}

// GetSupplier obtiene un proveedor.
func (h *PurchaseHandler) GetSupplier(c *fiber.Ctx) error {
	supplier, err := h.uc.GetSupplier(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewSupplierResponse(supplier))
}

// ListSuppliers lista proveedores.
func (h *PurchaseHandler) ListSuppliers(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	suppliers, err := h.uc.ListSuppliers(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		out = append(out, dto.NewSupplierResponse(&suppliers[i]))
	}
	return c.JSON(out)
}

// ListSupplierPurchases lista las compras de un proveedor.
func (h *PurchaseHandler) ListSupplierPurchases(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	list, err := h.uc.ListSupplierPurchases(c.Context(), c.Params("id"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.PurchaseResponse, 0, len(list))
	for i := range list {
		out = append(out, dto.NewPurchaseResponse(&list[i]))
	}
	return c.JSON(out)
}

// RegisterPurchase registra una compra con líneas ya parseadas del documento.
func (h *PurchaseHandler) RegisterPurchase(c *fiber.Ctx) error {
	var in dto.RegisterPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	items := make([]purchases.PurchaseItemInput, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, purchases.PurchaseItemInput{
			RawMaterialID: it.RawMaterialID,
			Description:   it.Description,
			Quantity:      it.Quantity,
			Unit:          it.Unit,
			UnitPrice:     it.UnitPrice,
		})
	}
	purchase, err := h.uc.RegisterPurchase(c.Context(), purchases.RegisterPurchaseInput{
		SupplierID:     in.SupplierID,
		DocumentType:   in.DocumentType,
		DocumentNumber: in.DocumentNumber,
		Items:          items,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewPurchaseResponse(purchase))
}

// GetPurchase obtiene una compra con sus líneas.
func (h *PurchaseHandler) GetPurchase(c *fiber.Ctx) error {
	purchase, err := h.uc.GetPurchase(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewPurchaseResponse(purchase))
}

// ListPurchases lista compras.
func (h *PurchaseHandler) ListPurchases(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	list, err := h.uc.ListPurchases(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.PurchaseResponse, 0, len(list))
	for i := range list {
		out = append(out, dto.NewPurchaseResponse(&list[i]))
	}
	return c.JSON(out)
}

// CompletePurchase completa una compra pendiente y repone el stock.
func (h *PurchaseHandler) CompletePurchase(c *fiber.Ctx) error {
	purchase, err := h.uc.CompletePurchase(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewPurchaseResponse(purchase))
}

// CancelPurchase cancela una compra pendiente.
func (h *PurchaseHandler) CancelPurchase(c *fiber.Ctx) error {
	purchase, err := h.uc.CancelPurchase(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewPurchaseResponse(purchase))
}
