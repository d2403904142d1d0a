package ports

import (
	"context"

	"github.com/scoutlink/player-platform/internal/core/domain"
)

// TrialRepository persists trial and tournament listings.
type TrialRepository interface {
	Create(ctx context.Context, trial *domain.Trial) (*domain.Trial, error)
	FindByID(ctx context.Context, id string) (*domain.Trial, error)
	List(ctx context.Context, kind domain.TrialKind) ([]domain.Trial, error)
	SetOpen(ctx context.Context, id string, open bool) (*domain.Trial, error)
}
