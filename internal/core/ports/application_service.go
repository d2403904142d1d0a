package ports

import (
	"context"

	"github.com/scoutlink/player-platform/internal/core/domain"
)

// ApplicationService handles the player-applies-to-trial flow.
type ApplicationService interface {
	// Apply submits a player's application to an open trial.
	Apply(ctx context.Context, trialID, playerID string) (*domain.Application, error)
	// ListFor scopes the listing by role: players see their own, academies
	// see applications on their trials, admins see everything.
	ListFor(ctx context.Context, actorID string, actorRole domain.Role) ([]domain.Application, error)
	// Decide sets ACCEPTED/REJECTED. Only the trial owner or an admin.
	Decide(ctx context.Context, id, status, actorID string, actorRole domain.Role) (*domain.Application, error)
}
