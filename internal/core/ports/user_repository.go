package ports

import (
	"context"

	"github.com/scoutlink/player-platform/internal/core/domain"
)

// UserRepository is the credential-store port. Two implementations exist
// (direct Postgres and REST-over-Postgres); one is selected at startup and
// never switched per request.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateName(ctx context.Context, id, name string) (*domain.User, error)
	SetActive(ctx context.Context, id string, active bool) (*domain.User, error)
}
