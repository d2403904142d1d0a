package service

import (
	"context"

	"github.com/scoutlink/player-platform/internal/core/domain"
	"github.com/scoutlink/player-platform/internal/core/ports"
)

type userService struct {
	repo ports.UserRepository
}

// NewUserService returns a UserService implementation.
func NewUserService(repo ports.UserRepository) ports.UserService {
	return &userService{repo: repo}
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) Get(ctx context.Context, id, actorID string, actorRole domain.Role) (*domain.User, error) {
	if actorRole != domain.RoleAdmin && id != actorID {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByID(ctx, id)
}

func (s *userService) UpdateName(ctx context.Context, id, name, actorID string, actorRole domain.Role) (*domain.User, error) {
	if actorRole != domain.RoleAdmin && id != actorID {
		return nil, domain.ErrForbidden
	}
	return s.repo.UpdateName(ctx, id, name)
}

func (s *userService) SetActive(ctx context.Context, id string, active bool, actorRole domain.Role) (*domain.User, error) {
	if actorRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return s.repo.SetActive(ctx, id, active)
}
