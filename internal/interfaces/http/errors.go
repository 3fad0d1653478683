package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/breadcraft/backoffice/internal/application/dto"
	"github.com/breadcraft/backoffice/internal/domain"
)

// respondError traduce errores de dominio a HTTP. Los fallos de validación van
// como 400, los agregados inexistentes como 404 y las violaciones de
// invariante (estado que no lo permite) como 409.
func respondError(c *fiber.Ctx, err error) error {
	var de *domain.Error
	if errors.As(err, &de) {
		body := dto.ErrorResponse{Code: de.Code, Message: de.Err.Error(), AggregateID: de.AggregateID}
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(body)
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(body)
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(body)
		}
	}
	if errors.Is(err, domain.ErrDuplicate) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("error no manejado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func pageParams(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	offset = c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
