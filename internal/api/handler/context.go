package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scoutlink/player-platform/internal/core/domain"
)

// ctxPrincipal extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: both user id and role
// must be non-empty (presence proves the middleware ran and the token carried
// a full identity).
func ctxPrincipal(c echo.Context) (userID string, role domain.Role, err error) {
	userID, _ = c.Get("user_id").(string)
	roleStr, _ := c.Get("role").(string)
	if userID == "" || roleStr == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, domain.Role(roleStr), nil
}
