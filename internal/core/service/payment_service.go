package service

import (
	"context"
	"time"

	"github.com/scoutlink/player-platform/internal/core/domain"
	"github.com/scoutlink/player-platform/internal/core/ports"
)

const defaultCurrency = "EUR"

type paymentService struct {
	repo    ports.PaymentRepository
	appRepo ports.ApplicationRepository
	trials  ports.TrialRepository
}

// NewPaymentService returns a PaymentService implementation.
func NewPaymentService(repo ports.PaymentRepository, appRepo ports.ApplicationRepository, trials ports.TrialRepository) ports.PaymentService {
	return &paymentService{repo: repo, appRepo: appRepo, trials: trials}
}

func (s *paymentService) CreateForApplication(ctx context.Context, applicationID, payerID string) (*domain.Payment, error) {
	app, err := s.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.PlayerID != payerID {
		return nil, domain.ErrForbidden
	}

	trial, err := s.trials.FindByID(ctx, app.TrialID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.Payment{
		PayerID:       payerID,
		ApplicationID: applicationID,
		AmountCents:   trial.FeeCents,
		Currency:      defaultCurrency,
		Status:        domain.PaymentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
}

func (s *paymentService) ListFor(ctx context.Context, actorID string, actorRole domain.Role) ([]domain.Payment, error) {
	if actorRole == domain.RoleAdmin {
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListByPayer(ctx, actorID)
}

func (s *paymentService) Settle(ctx context.Context, id, status string) (*domain.Payment, error) {
	parsed, err := domain.ParsePaymentStatus(status)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateStatus(ctx, id, parsed)
}
