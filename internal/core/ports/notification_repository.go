package ports

import (
	"context"

	"github.com/scoutlink/player-platform/internal/core/domain"
)

// NotificationRepository persists delivered notifications.
type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	ListByRecipient(ctx context.Context, recipientID string) ([]domain.Notification, error)
	// MarkRead flips the read flag; recipientID scopes the update so a user
	// cannot mark another user's notification.
	MarkRead(ctx context.Context, id, recipientID string) error
}
