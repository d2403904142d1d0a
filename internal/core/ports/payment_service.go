package ports

import (
	"context"

	"github.com/scoutlink/player-platform/internal/core/domain"
)

// PaymentService records and settles trial-fee payments.
type PaymentService interface {
	// CreateForApplication records a pending payment for the payer's own
	// application; the amount is taken from the trial's fee.
	CreateForApplication(ctx context.Context, applicationID, payerID string) (*domain.Payment, error)
	ListFor(ctx context.Context, actorID string, actorRole domain.Role) ([]domain.Payment, error)
	// Settle marks a payment PAID or FAILED. Admin only.
	Settle(ctx context.Context, id, status string) (*domain.Payment, error)
}
