package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caseritos/caseritos-api/internal/application/dto"
	"github.com/caseritos/caseritos-api/internal/application/usecase"
	"github.com/caseritos/caseritos-api/pkg/logger"
)

// NotificationHandler expone el feed de notificaciones del usuario autenticado.
type NotificationHandler struct {
	uc  *usecase.NotificationUseCase
	log *logger.Logger
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase, log *logger.Logger) *NotificationHandler {
	return &NotificationHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Notificaciones del usuario autenticado, más recientes primero
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.NotificationResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListForUser(GetIdentity(c).ID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// MarkRead godoc
// @Summary      Marcar una notificación como leída
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la notificación"
// @Success      200  {object}  dto.OkResponse
// @Router       /api/notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.uc.MarkRead(GetIdentity(c).ID, c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OkResponse{Ok: true})
}
