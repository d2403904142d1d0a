package ports

import (
	"context"

	"github.com/scoutlink/player-platform/internal/core/domain"
)

// MessageService handles direct messaging and the connection list derived
// from it.
type MessageService interface {
	Send(ctx context.Context, senderID, recipientID, body string) (*domain.Message, error)
	Thread(ctx context.Context, userID, otherID string) ([]domain.Message, error)
	Connections(ctx context.Context, userID string) ([]domain.Connection, error)
}
