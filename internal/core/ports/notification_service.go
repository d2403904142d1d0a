package ports

import (
	"context"

	"github.com/scoutlink/player-platform/internal/core/domain"
)

// NotificationInput is the DTO handed from producing services to the
// dispatcher and on to NotificationService.
type NotificationInput struct {
	RecipientID string
	Kind        string
	Reference   string
	Body        string
}

// NotificationService processes queued notifications and serves the
// recipient-facing read operations.
type NotificationService interface {
	// Process deduplicates and persists one notification. The bool reports
	// whether a record was actually inserted; a suppressed duplicate returns
	// false with a nil error.
	Process(ctx context.Context, in NotificationInput) (bool, error)
	List(ctx context.Context, recipientID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, recipientID string) error
}
