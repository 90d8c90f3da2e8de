package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/argomobile/studio-api/internal/core/ports"
)

// NotificationHandler handles HTTP requests for the notification feed.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// List returns the caller's feed, newest first.
//
// @Summary      List my notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Notification
// @Failure      401  {object}  errorResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	feed, err := h.service.ListNotifications(c.Request().Context(), p)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, feed)
}

// MarkRead flags one of the caller's notifications as read.
//
// @Summary      Mark a notification read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Notification id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.MarkNotificationRead(c.Request().Context(), p, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
