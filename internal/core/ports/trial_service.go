package ports

import (
	"context"
	"time"

	"github.com/scoutlink/player-platform/internal/core/domain"
)

// CreateTrialInput carries the data needed to publish a listing.
type CreateTrialInput struct {
	Kind     string
	Title    string
	Location string
	Date     time.Time
	FeeCents int64
	OwnerID  string
}

// TrialService manages trial and tournament listings.
type TrialService interface {
	Create(ctx context.Context, in CreateTrialInput) (*domain.Trial, error)
	Get(ctx context.Context, id string) (*domain.Trial, error)
	List(ctx context.Context, kind string) ([]domain.Trial, error)
	// Close marks a listing closed. Only the owning academy or an admin may
	// close it; actor identifies the caller.
	Close(ctx context.Context, id, actorID string, actorRole domain.Role) (*domain.Trial, error)
}
