package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caseritos/caseritos-api/internal/application/dto"
	"github.com/caseritos/caseritos-api/internal/application/usecase"
	"github.com/caseritos/caseritos-api/internal/domain"
	"github.com/caseritos/caseritos-api/internal/domain/repository"
	"github.com/caseritos/caseritos-api/pkg/logger"
)

// UserHandler expone el perfil del usuario autenticado y su historial.
type UserHandler struct {
	uc    *usecase.UserUseCase
	users repository.UserRepository
	log   *logger.Logger
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, users repository.UserRepository, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, users: users, log: log}
}

// Me godoc
// @Summary      Perfil del usuario autenticado
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Router       /api/users/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	user, err := h.users.GetByID(GetIdentity(c).ID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if user == nil {
		return respondError(c, h.log, domain.ErrNotFound)
	}
	return c.JSON(dto.UserResponseFrom(user))
}

// History godoc
// @Summary      Pujas realizadas y compras del usuario autenticado
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.HistoryResponse
// @Router       /api/users/me/history [get]
func (h *UserHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(GetIdentity(c).ID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
