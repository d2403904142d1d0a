package service

import (
	"context"
	"time"

	"github.com/scoutlink/player-platform/internal/core/domain"
	"github.com/scoutlink/player-platform/internal/core/ports"
)

type trialService struct {
	repo ports.TrialRepository
}

// NewTrialService returns a TrialService implementation.
func NewTrialService(repo ports.TrialRepository) ports.TrialService {
	return &trialService{repo: repo}
}

func (s *trialService) Create(ctx context.Context, in ports.CreateTrialInput) (*domain.Trial, error) {
	kind, err := domain.ParseTrialKind(in.Kind)
	if err != nil {
		return nil, err
	}

	trial := &domain.Trial{
		Kind:      kind,
		Title:     in.Title,
		Location:  in.Location,
		Date:      in.Date,
		FeeCents:  in.FeeCents,
		OwnerID:   in.OwnerID,
		Open:      true,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.Create(ctx, trial)
}

func (s *trialService) Get(ctx context.Context, id string) (*domain.Trial, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *trialService) List(ctx context.Context, kind string) ([]domain.Trial, error) {
	if kind == "" {
		return s.repo.List(ctx, "")
	}
	parsed, err := domain.ParseTrialKind(kind)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, parsed)
}

func (s *trialService) Close(ctx context.Context, id, actorID string, actorRole domain.Role) (*domain.Trial, error) {
	trial, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorRole != domain.RoleAdmin && trial.OwnerID != actorID {
		return nil, domain.ErrForbidden
	}
	return s.repo.SetOpen(ctx, id, false)
}
