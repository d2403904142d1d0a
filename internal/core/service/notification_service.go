package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/scoutlink/player-platform/internal/core/domain"
	"github.com/scoutlink/player-platform/internal/core/ports"
)

// DedupChecker abstracts the duplicate-notification store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, recipientID, kind, reference string) (bool, error)
	Mark(ctx context.Context, recipientID, kind, reference string) error
}

type notificationService struct {
	repo  ports.NotificationRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewNotificationService returns a NotificationService implementation.
func NewNotificationService(repo ports.NotificationRepository, dedup DedupChecker, log zerolog.Logger) ports.NotificationService {
	return &notificationService{repo: repo, dedup: dedup, log: log}
}

// Process deduplicates and persists a single queued notification. It reports
// whether a record was actually inserted; a suppressed duplicate is not a
// delivery.
func (s *notificationService) Process(ctx context.Context, in ports.NotificationInput) (bool, error) {
	// Idempotency check: silently skip duplicates.
	isDup, err := s.dedup.IsDuplicate(ctx, in.RecipientID, in.Kind, in.Reference)
	if err != nil {
		s.log.Warn().Err(err).Str("recipient", in.RecipientID).Msg("dedup check failed, delivering anyway")
	} else if isDup {
		s.log.Debug().Str("recipient", in.RecipientID).Str("kind", in.Kind).Msg("duplicate notification skipped")
		return false, nil
	}

	// Mark before writing so a crashed retry cannot double-deliver.
	if markErr := s.dedup.Mark(ctx, in.RecipientID, in.Kind, in.Reference); markErr != nil {
		s.log.Warn().Err(markErr).Str("recipient", in.RecipientID).Msg("failed to set dedup key")
	}

	_, err = s.repo.Insert(ctx, &domain.Notification{
		RecipientID: in.RecipientID,
		Kind:        domain.NotificationKind(in.Kind),
		Reference:   in.Reference,
		Body:        in.Body,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return false, fmt.Errorf("deliver notification: %w", err)
	}

	s.log.Info().
		Str("recipient", in.RecipientID).
		Str("kind", in.Kind).
		Msg("notification delivered")

	return true, nil
}

func (s *notificationService) List(ctx context.Context, recipientID string) ([]domain.Notification, error) {
	return s.repo.ListByRecipient(ctx, recipientID)
}

func (s *notificationService) MarkRead(ctx context.Context, id, recipientID string) error {
	return s.repo.MarkRead(ctx, id, recipientID)
}
