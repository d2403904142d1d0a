package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scoutlink/player-platform/internal/core/ports"
)

// MessageHandler handles direct messages and the derived connection list.
type MessageHandler struct {
	service ports.MessageService
}

func NewMessageHandler(service ports.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

type sendMessageRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
	Body        string `json:"body"         validate:"required"`
}

// Send delivers a direct message from the caller to the recipient.
func (h *MessageHandler) Send(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	userID, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	msg, err := h.service.Send(c.Request().Context(), userID, req.RecipientID, req.Body)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, msg)
}

// Thread returns the conversation between the caller and another user,
// oldest first.
func (h *MessageHandler) Thread(c echo.Context) error {
	userID, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	messages, err := h.service.Thread(c.Request().Context(), userID, c.Param("userID"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}

// Connections returns the caller's derived connection list: everyone they
// have exchanged at least one message with.
func (h *MessageHandler) Connections(c echo.Context) error {
	userID, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	conns, err := h.service.Connections(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, conns)
}
