package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Activos-api/internal/application/dto"
)

// DisposalQueries lo implementa *usecase.DisposalQueryUseCase.
type DisposalQueries interface {
	ListDisposals(ctx context.Context, page dto.PageRequest) ([]dto.DisposalResponse, error)
	ListNotifications(ctx context.Context, onlyUnread bool, page dto.PageRequest) ([]dto.NotificationResponse, error)
	MarkNotificationRead(ctx context.Context, id int64) error
}

// NotificationHandler bajas registradas y avisos.
type NotificationHandler struct {
	queries DisposalQueries
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(queries DisposalQueries) *NotificationHandler {
	return &NotificationHandler{queries: queries}
}

// Disposals godoc
// @Summary      Listar bajas
// @Tags         disposals
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.DisposalResponse
// @Router       /api/disposals [get]
func (h *NotificationHandler) Disposals(c *fiber.Ctx) error {
	out, err := h.queries.ListDisposals(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar avisos
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        unread  query  bool  false  "Solo no leídos"
// @Param        limit   query  int   false  "Límite"  default(20)
// @Param        offset  query  int   false  "Offset"  default(0)
// @Success      200     {array}  dto.NotificationResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	out, err := h.queries.ListNotifications(c.UserContext(), c.QueryBool("unread", false), pageFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// MarkRead godoc
// @Summary      Marcar aviso como leído
// @Tags         notifications
// @Security     Bearer
// @Param        id   path  int  true  "ID del aviso"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.queries.MarkNotificationRead(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
