package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/scoutlink/player-platform/internal/api/metrics"
	"github.com/scoutlink/player-platform/internal/core/domain"
)

// defaultLoginPath is where unauthenticated requests land.
const defaultLoginPath = "/player/login"

// skipPrefixes are asset and operational paths the guard never inspects.
var skipPrefixes = []string{
	"/static/",
	"/assets/",
	"/favicon.ico",
	"/metrics",
	"/health",
}

// publicPrefixes are always reachable: the auth API root and marketing pages.
var publicPrefixes = []string{
	"/api/auth",
	"/about",
	"/contact",
	"/pricing",
}

// publicSegments mark a path public wherever they appear as a full segment,
// so each namespace's own login page stays reachable (/admin/login is public
// even though /admin/* is protected). Whole-segment matching, not substring:
// a raw substring check would also expose paths like /admin/login-audit.
var publicSegments = map[string]struct{}{
	"login":          {},
	"register":       {},
	"password-reset": {},
}

// Guard intercepts every request before it reaches a route. It resolves to
// exactly one of two outcomes, ALLOW or REDIRECT; it never returns an error
// payload. Public classification is checked before any protection rule.
//
// For protected paths whose leading segment is a role namespace
// (player|agent|academy|admin), the session token's role must match the
// namespace; a mismatch redirects to that namespace's own login page. A
// protected path outside the role namespaces (e.g. /api/...) passes with any
// valid token; per-route Auth/RBAC middleware enforces the rest.
func Guard(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path

			for _, prefix := range skipPrefixes {
				if strings.HasPrefix(path, prefix) {
					return next(c)
				}
			}

			if isPublicPath(path) {
				metrics.GuardDecisionsTotal.WithLabelValues("allow_public").Inc()
				return next(c)
			}

			role, ok := roleFromRequest(c.Request(), jwtSecret)
			if !ok {
				metrics.GuardDecisionsTotal.WithLabelValues("redirect_unauthenticated").Inc()
				return c.Redirect(http.StatusFound, defaultLoginPath)
			}

			if ns, isNamespace := namespaceSegment(path); isNamespace {
				required, _ := domain.RoleForNamespace(ns)
				if role != required {
					metrics.GuardDecisionsTotal.WithLabelValues("redirect_role").Inc()
					return c.Redirect(http.StatusFound, "/"+ns+"/login")
				}
			}

			metrics.GuardDecisionsTotal.WithLabelValues("allow").Inc()
			return next(c)
		}
	}
}

func isPublicPath(path string) bool {
	if path == "/" || path == "" {
		return true
	}
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	for _, segment := range strings.Split(strings.Trim(path, "/"), "/") {
		if _, ok := publicSegments[segment]; ok {
			return true
		}
	}
	return false
}

// roleFromRequest decodes the session token's role. Absent or invalid tokens
// fail silently to "no token"; the guard never surfaces a decode error.
func roleFromRequest(r *http.Request, jwtSecret string) (domain.Role, bool) {
	raw := TokenFromRequest(r)
	if raw == "" {
		return "", false
	}
	claims, err := ParseToken(raw, jwtSecret)
	if err != nil {
		return "", false
	}
	role, _ := claims["role"].(string)
	if role == "" {
		return "", false
	}
	return domain.Role(role), true
}

// namespaceSegment returns the leading path segment if it is one of the four
// role namespaces.
func namespaceSegment(path string) (string, bool) {
	segment, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	if _, ok := domain.RoleForNamespace(segment); ok {
		return segment, true
	}
	return "", false
}
