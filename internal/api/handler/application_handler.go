package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scoutlink/player-platform/internal/core/domain"
	"github.com/scoutlink/player-platform/internal/core/ports"
)

// ApplicationHandler handles HTTP requests for trial applications.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

type applyRequest struct {
	TrialID string `json:"trial_id" validate:"required"`
}

// Apply submits the calling player's application to an open trial.
//
// @Summary      Apply to a trial
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      applyRequest  true  "Trial to apply to"
// @Success      201   {object}  domain.Application
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/applications [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	var req applyRequest
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

	app, err := h.service.Apply(c.Request().Context(), req.TrialID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrTrialClosed) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusCreated, app)
}

// List returns applications scoped by the caller's role.
func (h *ApplicationHandler) List(c echo.Context) error {
	userID, role, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	apps, err := h.service.ListFor(c.Request().Context(), userID, role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apps)
}

type decideRequest struct {
	Status string `json:"status" validate:"required"`
}

// Decide sets an application ACCEPTED or REJECTED; trial owner or admin.
func (h *ApplicationHandler) Decide(c echo.Context) error {
	var req decideRequest
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

	app, err := h.service.Decide(c.Request().Context(), c.Param("id"), req.Status, userID, role)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, app)
}
