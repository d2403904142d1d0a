package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/scoutlink/player-platform/internal/api/middleware"
	"github.com/scoutlink/player-platform/internal/core/domain"
	"github.com/scoutlink/player-platform/internal/core/ports"
)

// SessionHandler bridges credential verification and session issuance. The
// verification happens in-process; no internal HTTP round-trip.
type SessionHandler struct {
	authService ports.AuthService
	jwtSecret   string
	tokenTTL    time.Duration
}

func NewSessionHandler(authService ports.AuthService, jwtSecret string, tokenTTL time.Duration) *SessionHandler {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &SessionHandler{authService: authService, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

type sessionResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// Create authenticates and mints a session: signed token in the body plus an
// HttpOnly session cookie.
//
// @Summary      Create a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/auth/session [post]
func (h *SessionHandler) Create(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email and password are required"})
	}

	token, user, err := h.authService.IssueSession(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		case errors.Is(err, domain.ErrAccountInactive):
			return c.JSON(http.StatusForbidden, map[string]string{"error": "account inactive"})
		}
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.tokenTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, sessionResponse{Token: token, User: newUserResponse(user)})
}

// Get returns the principal encoded in the current session token.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/session [get]
func (h *SessionHandler) Get(c echo.Context) error {
	raw := middleware.TokenFromRequest(c.Request())
	if raw == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no session"})
	}

	claims, err := middleware.ParseToken(raw, h.jwtSecret)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no session"})
	}

	id, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	email, _ := claims["email"].(string)
	return c.JSON(http.StatusOK, map[string]string{"id": id, "role": role, "email": email})
}

// Delete clears the session cookie. Tokens are stateless; there is no
// server-side revocation list, so an already-issued token stays valid until
// expiry.
//
// @Summary      End the session
// @Tags         auth
// @Success      204
// @Router       /api/auth/session [delete]
func (h *SessionHandler) Delete(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.NoContent(http.StatusNoContent)
}
