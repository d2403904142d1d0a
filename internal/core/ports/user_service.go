package ports

import (
	"context"

	"github.com/scoutlink/player-platform/internal/core/domain"
)

// UserService serves admin user management and self-service profile reads.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	// Get returns a user; non-admin actors may only read themselves.
	Get(ctx context.Context, id, actorID string, actorRole domain.Role) (*domain.User, error)
	// UpdateName changes the display name; self or admin.
	UpdateName(ctx context.Context, id, name, actorID string, actorRole domain.Role) (*domain.User, error)
	// SetActive flips the account-active flag. Admin only; enforced by RBAC
	// at the route, re-checked here.
	SetActive(ctx context.Context, id string, active bool, actorRole domain.Role) (*domain.User, error)
}
