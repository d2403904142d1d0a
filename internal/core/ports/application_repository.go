package ports

import (
	"context"

	"github.com/scoutlink/player-platform/internal/core/domain"
)

// ApplicationRepository persists trial applications.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	ListByPlayer(ctx context.Context, playerID string) ([]domain.Application, error)
	ListByTrialOwner(ctx context.Context, ownerID string) ([]domain.Application, error)
	ListAll(ctx context.Context) ([]domain.Application, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error)
}
