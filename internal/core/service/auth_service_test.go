package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/scoutlink/player-platform/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User // keyed by email
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByIDs(_ context.Context, ids []string) ([]domain.User, error) {
	var out []domain.User
	for _, id := range ids {
		for _, u := range r.users {
			if u.ID == id {
				out = append(out, *cloneUser(u))
			}
		}
	}
	return out, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = "user_" + user.Email
	}
	r.users[copy.Email] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		out = append(out, *cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) UpdateName(_ context.Context, id, name string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			u.Name = name
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) SetActive(_ context.Context, id string, active bool) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			u.Active = active
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user, err := svc.Register(context.Background(), "alice@example.com", "pass123", "Alice", "")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RolePlayer {
		t.Fatalf("expected default role PLAYER, got %s", user.Role)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if !user.Active {
		t.Fatalf("expected new account to be active")
	}
}

func TestAuthService_Register_NormalizesEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user, err := svc.Register(context.Background(), "  A@B.com ", "secret1", "", "player")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Email != "a@b.com" {
		t.Fatalf("expected normalized email a@b.com, got %q", user.Email)
	}

	// The normalized form must resolve to the same record at login.
	if _, err := svc.Login(context.Background(), "a@b.com", "secret1"); err != nil {
		t.Fatalf("login with normalized email failed: %v", err)
	}
	if _, err := svc.Login(context.Background(), "  A@B.com ", "secret1"); err != nil {
		t.Fatalf("login with unnormalized email failed: %v", err)
	}
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "bob@example.com", "12345", "", ""); !errors.Is(err, domain.ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
	if len(repo.users) != 0 {
		t.Fatalf("expected no record created on rejected password")
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "bob@example.com", "pass123", "", "wizard"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}

	// Case-insensitive input is accepted and normalized to uppercase.
	user, err := svc.Register(context.Background(), "carol@example.com", "pass123", "", "academy")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleAcademy {
		t.Fatalf("expected ACADEMY, got %s", user.Role)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "bob@example.com", "pass123", "", "")
	if _, err := svc.Register(context.Background(), "bob@example.com", "pass456", "", ""); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailIsIndistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "dave@example.com", "goodpass", "", "")

	// Wrong password on a known account and any password on an unknown
	// account must produce the same error.
	_, errKnown := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, errUnknown := svc.Login(context.Background(), "ghost@example.com", "badpass")

	if !errors.Is(errKnown, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", errKnown)
	}
	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", errUnknown)
	}
}

func TestAuthService_Login_NoLocalCredential(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	// Externally-provisioned account: no password hash stored.
	repo.users["ext@example.com"] = &domain.User{
		ID: "ext_1", Email: "ext@example.com", Role: domain.RolePlayer, Active: true,
	}

	if _, err := svc.Login(context.Background(), "ext@example.com", "anything"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user, err := svc.Register(context.Background(), "eve@example.com", "pass123", "", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := repo.SetActive(context.Background(), user.ID, false); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}

	// Correct credentials on an inactive account never succeed.
	if _, err := svc.Login(context.Background(), "eve@example.com", "pass123"); !errors.Is(err, domain.ErrAccountInactive) {
		t.Fatalf("expected ErrAccountInactive, got %v", err)
	}
}

func TestAuthService_IssueSession(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	registered, err := svc.Register(context.Background(), "x@y.com", "secret1", "", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.IssueSession(context.Background(), "x@y.com", "secret1")
	if err != nil {
		t.Fatalf("issue session failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.ID != registered.ID {
		t.Fatalf("expected matching id %q, got %q", registered.ID, user.ID)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != registered.ID {
		t.Fatalf("expected sub %q, got %v", registered.ID, claims["sub"])
	}
	if claims["role"] != string(domain.RolePlayer) {
		t.Fatalf("expected role PLAYER, got %v", claims["role"])
	}

	if _, _, err := svc.IssueSession(context.Background(), "x@y.com", "wrongpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
