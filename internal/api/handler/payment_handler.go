package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scoutlink/player-platform/internal/core/domain"
	"github.com/scoutlink/player-platform/internal/core/ports"
)

// PaymentHandler handles HTTP requests for trial-fee payments.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type createPaymentRequest struct {
	ApplicationID string `json:"application_id" validate:"required"`
}

// Create records a pending payment for the caller's own application.
func (h *PaymentHandler) Create(c echo.Context) error {
	var req createPaymentRequest
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

	payment, err := h.service.CreateForApplication(c.Request().Context(), req.ApplicationID, userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, payment)
}

// List returns payments scoped by the caller's role.
func (h *PaymentHandler) List(c echo.Context) error {
	userID, role, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	payments, err := h.service.ListFor(c.Request().Context(), userID, role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}

type settleRequest struct {
	Status string `json:"status" validate:"required"`
}

// Settle marks a payment PAID or FAILED; admin only (enforced by RBAC).
func (h *PaymentHandler) Settle(c echo.Context) error {
	var req settleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	payment, err := h.service.Settle(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPaymentStatus) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, payment)
}
