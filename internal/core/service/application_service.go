package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/scoutlink/player-platform/internal/core/domain"
	"github.com/scoutlink/player-platform/internal/core/ports"
)

// Notifier abstracts the async notification queue. Enqueue must never block
// the calling request beyond channel buffering.
type Notifier interface {
	Enqueue(in ports.NotificationInput)
}

type applicationService struct {
	repo      ports.ApplicationRepository
	trialRepo ports.TrialRepository
	notifier  Notifier
	log       zerolog.Logger
}

// NewApplicationService returns an ApplicationService implementation.
func NewApplicationService(
	repo ports.ApplicationRepository,
	trialRepo ports.TrialRepository,
	notifier Notifier,
	log zerolog.Logger,
) ports.ApplicationService {
	return &applicationService{repo: repo, trialRepo: trialRepo, notifier: notifier, log: log}
}

func (s *applicationService) Apply(ctx context.Context, trialID, playerID string) (*domain.Application, error) {
	trial, err := s.trialRepo.FindByID(ctx, trialID)
	if err != nil {
		return nil, err
	}
	if !trial.Open {
		return nil, domain.ErrTrialClosed
	}

	now := time.Now().UTC()
	app, err := s.repo.Create(ctx, &domain.Application{
		TrialID:   trialID,
		PlayerID:  playerID,
		Status:    domain.ApplicationPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Enqueue(ports.NotificationInput{
		RecipientID: trial.OwnerID,
		Kind:        string(domain.NotifyApplicationReceived),
		Reference:   app.ID,
		Body:        fmt.Sprintf("New application for %q", trial.Title),
	})

	return app, nil
}

func (s *applicationService) ListFor(ctx context.Context, actorID string, actorRole domain.Role) ([]domain.Application, error) {
	switch actorRole {
	case domain.RoleAdmin:
		return s.repo.ListAll(ctx)
	case domain.RoleAcademy:
		return s.repo.ListByTrialOwner(ctx, actorID)
	default:
		return s.repo.ListByPlayer(ctx, actorID)
	}
}

func (s *applicationService) Decide(ctx context.Context, id, status, actorID string, actorRole domain.Role) (*domain.Application, error) {
	parsed, err := domain.ParseApplicationStatus(status)
	if err != nil {
		return nil, err
	}

	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	trial, err := s.trialRepo.FindByID(ctx, app.TrialID)
	if err != nil {
		return nil, err
	}
	if actorRole != domain.RoleAdmin && trial.OwnerID != actorID {
		return nil, domain.ErrForbidden
	}

	updated, err := s.repo.UpdateStatus(ctx, id, parsed)
	if err != nil {
		return nil, err
	}

	s.notifier.Enqueue(ports.NotificationInput{
		RecipientID: app.PlayerID,
		Kind:        string(domain.NotifyApplicationDecided),
		Reference:   app.ID,
		Body:        fmt.Sprintf("Your application for %q was %s", trial.Title, parsed),
	})

	return updated, nil
}
