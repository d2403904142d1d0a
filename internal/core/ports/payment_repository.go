package ports

import (
	"context"

	"github.com/scoutlink/player-platform/internal/core/domain"
)

// PaymentRepository persists trial-fee payments.
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	FindByID(ctx context.Context, id string) (*domain.Payment, error)
	ListByPayer(ctx context.Context, payerID string) ([]domain.Payment, error)
	ListAll(ctx context.Context) ([]domain.Payment, error)
	UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Payment, error)
}
