package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/caseritos/caseritos-api/internal/application/dto"
	"github.com/caseritos/caseritos-api/internal/domain"
	"github.com/caseritos/caseritos-api/pkg/logger"
)

// respondError traduce un error de dominio a la taxonomía HTTP:
// entrada inválida, conflicto (oferta vendida) y autocompra → 400;
// acceso denegado → 403; no encontrado → 404; el resto → 500 con mensaje
// genérico y el detalle solo en el log del servidor.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrSelfPurchase),
		errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "No autorizado"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno"})
	}
}
