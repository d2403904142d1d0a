package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/scoutlink/player-platform/internal/core/domain"
	"github.com/scoutlink/player-platform/internal/core/ports"
)

// ConnectionCache abstracts the derived-connection cache (Redis).
type ConnectionCache interface {
	Get(ctx context.Context, userID string) ([]domain.Connection, bool, error)
	Set(ctx context.Context, userID string, conns []domain.Connection) error
	Invalidate(ctx context.Context, userID string) error
}

type messageService struct {
	repo     ports.MessageRepository
	userRepo ports.UserRepository
	cache    ConnectionCache
	notifier Notifier
	log      zerolog.Logger
}

// NewMessageService returns a MessageService implementation.
func NewMessageService(
	repo ports.MessageRepository,
	userRepo ports.UserRepository,
	cache ConnectionCache,
	notifier Notifier,
	log zerolog.Logger,
) ports.MessageService {
	return &messageService{repo: repo, userRepo: userRepo, cache: cache, notifier: notifier, log: log}
}

func (s *messageService) Send(ctx context.Context, senderID, recipientID, body string) (*domain.Message, error) {
	recipient, err := s.userRepo.FindByID(ctx, recipientID)
	if err != nil {
		return nil, err
	}

	msg, err := s.repo.Insert(ctx, &domain.Message{
		SenderID:    senderID,
		RecipientID: recipient.ID,
		Body:        body,
		SentAt:      time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	// A new message can introduce a new counterpart on both sides.
	for _, id := range []string{senderID, recipientID} {
		if err := s.cache.Invalidate(ctx, id); err != nil {
			s.log.Warn().Err(err).Str("user_id", id).Msg("connection cache invalidation failed")
		}
	}

	s.notifier.Enqueue(ports.NotificationInput{
		RecipientID: recipientID,
		Kind:        string(domain.NotifyMessageReceived),
		Reference:   msg.ID,
		Body:        "You have a new message",
	})

	return msg, nil
}

func (s *messageService) Thread(ctx context.Context, userID, otherID string) ([]domain.Message, error) {
	return s.repo.Thread(ctx, userID, otherID)
}

// Connections derives the caller's connection list from the message store:
// every distinct counterpart, hydrated with name and role from the user
// store. Results are cached; a cache failure degrades to a recompute.
func (s *messageService) Connections(ctx context.Context, userID string) ([]domain.Connection, error) {
	if cached, ok, err := s.cache.Get(ctx, userID); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("connection cache read failed")
	} else if ok {
		return cached, nil
	}

	ids, err := s.repo.CounterpartIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("derive connections: %w", err)
	}
	if len(ids) == 0 {
		return []domain.Connection{}, nil
	}

	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("hydrate connections: %w", err)
	}

	conns := make([]domain.Connection, 0, len(users))
	for _, u := range users {
		conns = append(conns, domain.Connection{UserID: u.ID, Name: u.Name, Role: u.Role})
	}

	if err := s.cache.Set(ctx, userID, conns); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("connection cache write failed")
	}

	return conns, nil
}
