package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scoutlink/player-platform/internal/core/ports"
)

// UserHandler serves admin user management and self-service profile routes.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List returns all users; admin only (enforced by RBAC).
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns a user; self or admin.
func (h *UserHandler) Get(c echo.Context) error {
	userID, role, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), c.Param("id"), userID, role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

type updateNameRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdateName changes a user's display name; self or admin.
func (h *UserHandler) UpdateName(c echo.Context) error {
	var req updateNameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	userID, role, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	user, err := h.service.UpdateName(c.Request().Context(), c.Param("id"), req.Name, userID, role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

type setActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// SetActive activates or deactivates an account; admin only. Deactivation
// takes full effect at the next login; an already-issued token stays valid
// until expiry.
func (h *UserHandler) SetActive(c echo.Context) error {
	var req setActiveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	_, role, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	user, err := h.service.SetActive(c.Request().Context(), c.Param("id"), *req.Active, role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
