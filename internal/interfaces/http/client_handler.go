package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/breadcraft/backoffice/internal/application/dto"
	"github.com/breadcraft/backoffice/internal/application/usecase"
)

// ClientHandler maneja las peticiones HTTP para clientes.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create alta de cliente.
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	client, err := h.uc.Create(c.Context(), usecase.CreateClientInput{
		Name:    in.Name,
		Phone:   in.Phone,
		Email:   in.Email,
		Address: in.Address,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewClientResponse(client))
}

// GetByID obtiene un cliente con sus acumulados.
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	client, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewClientResponse(client))
}

// List lista clientes.
func (h *ClientHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	clients, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		out = append(out, dto.NewClientResponse(&clients[i]))
	}
	return c.JSON(out)
}

// History devuelve el historial de eventos de un cliente en orden cronológico.
func (h *ClientHandler) History(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	events, err := h.uc.History(c.Context(), c.Params("id"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ClientHistoryResponse, 0, len(events))
	for _, e := range events {
		out = append(out, dto.ClientHistoryResponse{
			ID:          e.ID,
			EventType:   e.EventType,
			Description: e.Description,
			Amount:      e.Amount,
			CreatedAt:   e.CreatedAt,
		})
	}
	return c.JSON(out)
}
