package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/scoutlink/player-platform/internal/core/domain"
	"github.com/scoutlink/player-platform/internal/core/ports"
)

// TrialHandler handles HTTP requests for trial and tournament listings.
type TrialHandler struct {
	service ports.TrialService
}

func NewTrialHandler(service ports.TrialService) *TrialHandler {
	return &TrialHandler{service: service}
}

type createTrialRequest struct {
	Kind     string    `json:"kind"`
	Title    string    `json:"title"    validate:"required"`
	Location string    `json:"location"`
	Date     time.Time `json:"date"     validate:"required"`
	FeeCents int64     `json:"fee_cents" validate:"gte=0"`
}

// Create publishes a new listing owned by the calling academy.
//
// @Summary      Create a trial or tournament listing
// @Tags         trials
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTrialRequest  true  "Listing details"
// @Success      201   {object}  domain.Trial
// @Failure      400   {object}  map[string]string
// @Router       /api/trials [post]
func (h *TrialHandler) Create(c echo.Context) error {
	var req createTrialRequest
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

	trial, err := h.service.Create(c.Request().Context(), ports.CreateTrialInput{
		Kind:     req.Kind,
		Title:    req.Title,
		Location: req.Location,
		Date:     req.Date,
		FeeCents: req.FeeCents,
		OwnerID:  userID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidKind) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusCreated, trial)
}

// List returns listings, optionally filtered by ?kind=TRIAL|TOURNAMENT.
func (h *TrialHandler) List(c echo.Context) error {
	trials, err := h.service.List(c.Request().Context(), c.QueryParam("kind"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidKind) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, trials)
}

// Get returns a single listing by id.
func (h *TrialHandler) Get(c echo.Context) error {
	trial, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trial)
}

// Close marks a listing closed; owner or admin only.
func (h *TrialHandler) Close(c echo.Context) error {
	userID, role, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	trial, err := h.service.Close(c.Request().Context(), c.Param("id"), userID, role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trial)
}
