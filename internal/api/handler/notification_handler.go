package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scoutlink/player-platform/internal/core/ports"
)

// NotificationHandler serves the recipient-facing notification operations.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// List returns the caller's notifications, unread first.
func (h *NotificationHandler) List(c echo.Context) error {
	userID, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	notifications, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notifications)
}

// MarkRead flips a notification's read flag; scoped to the caller.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.MarkRead(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
