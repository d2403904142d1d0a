package ports

import (
	"context"

	"github.com/scoutlink/player-platform/internal/core/domain"
)

// MessageRepository persists direct messages.
type MessageRepository interface {
	Insert(ctx context.Context, msg *domain.Message) (*domain.Message, error)
	// Thread returns all messages between two users, oldest first.
	Thread(ctx context.Context, userA, userB string) ([]domain.Message, error)
	// CounterpartIDs returns the distinct ids of every user the given user
	// has exchanged at least one message with.
	CounterpartIDs(ctx context.Context, userID string) ([]string, error)
}
