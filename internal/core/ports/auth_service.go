package ports

import (
	"context"

	"github.com/scoutlink/player-platform/internal/core/domain"
)

// AuthService implements credential verification and session issuance.
//
// Login verifies credentials and returns the user projection only; it never
// mints a token. IssueSession performs the same verification in-process and
// additionally returns a signed session token.
type AuthService interface {
	Register(ctx context.Context, email, password, name, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	IssueSession(ctx context.Context, email, password string) (string, *domain.User, error)
}
