package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/breadcraft/backoffice/internal/application/dto"
	"github.com/breadcraft/backoffice/internal/application/sales"
	"github.com/breadcraft/backoffice/internal/domain/entity"
)

// SalesHandler maneja las peticiones HTTP de ventas, devoluciones y créditos.
type SalesHandler struct {
	uc *sales.ReconcilerUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *sales.ReconcilerUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// CreateSale crea una venta en estado pending.
func (h *SalesHandler) CreateSale(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	items := make([]sales.SaleItemInput, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, sales.SaleItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	sale, err := h.uc.CreateSale(c.Context(), sales.CreateSaleInput{ClientID: in.ClientID, Items: items})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewSaleResponse(sale))
}

// GetSale obtiene una venta con sus líneas.
func (h *SalesHandler) GetSale(c *fiber.Ctx) error {
	sale, err := h.uc.GetSale(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewSaleResponse(sale))
}

// ListSales lista ventas.
func (h *SalesHandler) ListSales(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	list, err := h.uc.ListSales(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for i := range list {
		out = append(out, dto.NewSaleResponse(&list[i]))
	}
	return c.JSON(out)
}

// ConfirmSale confirma una venta pendiente y actualiza los acumulados del cliente.
func (h *SalesHandler) ConfirmSale(c *fiber.Ctx) error {
	sale, err := h.uc.ConfirmSale(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewSaleResponse(sale))
}

// CancelSale cancela una venta pendiente.
func (h *SalesHandler) CancelSale(c *fiber.Ctx) error {
	sale, err := h.uc.CancelSale(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewSaleResponse(sale))
}

// ProcessReturn registra una devolución contra una venta completada y emite
// el crédito correspondiente. Todo o nada.
func (h *SalesHandler) ProcessReturn(c *fiber.Ctx) error {
	var in dto.CreateReturnRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	items := make([]sales.ReturnItemInput, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, sales.ReturnItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	result, err := h.uc.ProcessReturn(c.Context(), c.Params("id"), items)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProcessReturnResponse{
		Sale:   dto.NewSaleResponse(result.Sale),
		Return: newReturnResponse(result.Return),
		Credit: dto.NewCreditResponse(result.Credit),
	})
}

func newReturnResponse(ret *entity.SaleReturn) dto.ReturnResponse {
	items := make([]dto.ReturnItemRequest, 0, len(ret.Items))
	for _, it := range ret.Items {
		items = append(items, dto.ReturnItemRequest{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return dto.ReturnResponse{
		ID:            ret.ID,
		SaleID:        ret.SaleID,
		Items:         items,
		ValueRefunded: ret.ValueRefunded,
		CreatedAt:     ret.CreatedAt,
	}
}

// ListReturns devuelve las devoluciones de una venta.
func (h *SalesHandler) ListReturns(c *fiber.Ctx) error {
	returns, err := h.uc.ListReturns(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ReturnResponse, 0, len(returns))
	for i := range returns {
		out = append(out, newReturnResponse(&returns[i]))
	}
	return c.JSON(out)
}

// ListClientCredits lista los créditos de un cliente.
func (h *SalesHandler) ListClientCredits(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	list, err := h.uc.ListClientCredits(c.Context(), c.Params("id"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.CreditResponse, 0, len(list))
	for i := range list {
		out = append(out, dto.NewCreditResponse(&list[i]))
	}
	return c.JSON(out)
}

// ListCredits lista créditos.
func (h *SalesHandler) ListCredits(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	list, err := h.uc.ListCredits(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.CreditResponse, 0, len(list))
	for i := range list {
		out = append(out, dto.NewCreditResponse(&list[i]))
	}
	return c.JSON(out)
}

// ApplyCredit consume (parcial o totalmente) un crédito abierto.
func (h *SalesHandler) ApplyCredit(c *fiber.Ctx) error {
	var in dto.ApplyCreditRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	credit, err := h.uc.ApplyCredit(c.Context(), c.Params("id"), in.Amount)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewCreditResponse(credit))
}

// ExpireCredit marca un crédito abierto como expirado.
func (h *SalesHandler) ExpireCredit(c *fiber.Ctx) error {
	credit, err := h.uc.ExpireCredit(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewCreditResponse(credit))
}
