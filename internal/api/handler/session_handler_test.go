package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/scoutlink/player-platform/internal/api/middleware"
	"github.com/scoutlink/player-platform/internal/core/domain"
)

const sessionTestSecret = "session-secret"

func signSessionToken(t *testing.T, id, role, email string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   id,
		"role":  role,
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(sessionTestSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestSessionHandler_Create_SetsCookieAndReturnsToken(t *testing.T) {
	e := echo.New()
	svc := &stubAuthService{
		issueFn: func(_ context.Context, email, _ string) (string, *domain.User, error) {
			return "signed-token", &domain.User{ID: "u1", Email: email, Role: domain.RolePlayer, Active: true}, nil
		},
	}
	h := NewSessionHandler(svc, sessionTestSecret, time.Hour)

	req, rec := jsonRequest(http.MethodPost, "/api/auth/session", `{"email":"a@b.com","password":"pass123"}`)
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Token != "signed-token" {
		t.Fatalf("expected token in body, got %q", got.Token)
	}
	if got.User.ID != "u1" {
		t.Fatalf("expected user projection, got %+v", got.User)
	}

	var cookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			cookie = ck
		}
	}
	if cookie == nil {
		t.Fatalf("expected %s cookie to be set", middleware.SessionCookie)
	}
	if cookie.Value != "signed-token" {
		t.Fatalf("expected cookie to carry the token, got %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatalf("expected HttpOnly cookie")
	}
}

func TestSessionHandler_Create_InvalidCredentials(t *testing.T) {
	e := echo.New()
	svc := &stubAuthService{
		issueFn: func(_ context.Context, _, _ string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewSessionHandler(svc, sessionTestSecret, time.Hour)

	req, rec := jsonRequest(http.MethodPost, "/api/auth/session", `{"email":"a@b.com","password":"wrong"}`)
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if cookies := rec.Result().Cookies(); len(cookies) != 0 {
		t.Fatalf("expected no cookie on failed login, got %d", len(cookies))
	}
}

func TestSessionHandler_Get_FromCookie(t *testing.T) {
	e := echo.New()
	h := NewSessionHandler(&stubAuthService{}, sessionTestSecret, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: signSessionToken(t, "u1", "ACADEMY", "club@example.com")})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got["id"] != "u1" || got["role"] != "ACADEMY" || got["email"] != "club@example.com" {
		t.Fatalf("unexpected session payload: %v", got)
	}
}

func TestSessionHandler_Get_NoSession(t *testing.T) {
	e := echo.New()
	h := NewSessionHandler(&stubAuthService{}, sessionTestSecret, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSessionHandler_Get_ExpiredToken(t *testing.T) {
	e := echo.New()
	h := NewSessionHandler(&stubAuthService{}, sessionTestSecret, time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "u1",
		"role": "PLAYER",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := token.SignedString([]byte(sessionTestSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: signed})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", rec.Code)
	}
}

func TestSessionHandler_Delete_ClearsCookie(t *testing.T) {
	e := echo.New()
	h := NewSessionHandler(&stubAuthService{}, sessionTestSecret, time.Hour)

	req := httptest.NewRequest(http.MethodDelete, "/api/auth/session", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	var cookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			cookie = ck
		}
	}
	if cookie == nil {
		t.Fatalf("expected cleared cookie")
	}
	if cookie.MaxAge != -1 || cookie.Value != "" {
		t.Fatalf("expected expired empty cookie, got MaxAge=%d Value=%q", cookie.MaxAge, cookie.Value)
	}
}
