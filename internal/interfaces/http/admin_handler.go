package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caseritos/caseritos-api/internal/application/dto"
	"github.com/caseritos/caseritos-api/internal/application/usecase"
	"github.com/caseritos/caseritos-api/pkg/logger"
)

// AdminHandler expone la administración de usuarios y ofertas. Todas las rutas
// van detrás de RequireAdmin.
type AdminHandler struct {
	uc  *usecase.AdminUseCase
	log *logger.Logger
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *usecase.AdminUseCase, log *logger.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, log: log}
}

// ListUsers godoc
// @Summary      Listar todos los usuarios
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.uc.ListUsers()
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetUser godoc
// @Summary      Consultar un usuario
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id} [get]
func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	out, err := h.uc.GetUser(c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// UpdateUser godoc
// @Summary      Actualizar nombre, teléfono o rol de un usuario
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.AdminUpdateUserRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	var in dto.AdminUpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateUser(c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// DeleteUser godoc
// @Summary      Eliminar un usuario y sus datos asociados
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.OkResponse
// @Router       /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.uc.DeleteUser(c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OkResponse{Ok: true})
}

// ListOffers godoc
// @Summary      Listar todas las ofertas, incluidas las vendidas
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OfferResponse
// @Router       /api/admin/offers [get]
func (h *AdminHandler) ListOffers(c *fiber.Ctx) error {
	out, err := h.uc.ListOffers()
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// DeleteOffer godoc
// @Summary      Eliminar una oferta
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la oferta"
// @Success      200  {object}  dto.OkResponse
// @Router       /api/admin/offers/{id} [delete]
func (h *AdminHandler) DeleteOffer(c *fiber.Ctx) error {
	if err := h.uc.DeleteOffer(c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OkResponse{Ok: true})
}
