package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/scoutlink/player-platform/internal/core/domain"
	"github.com/scoutlink/player-platform/internal/core/ports"
)

type stubNotificationRepo struct {
	inserted []domain.Notification
	nextID   int
}

func (r *stubNotificationRepo) Insert(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	r.nextID++
	clone := *n
	clone.ID = fmt.Sprintf("n_%d", r.nextID)
	r.inserted = append(r.inserted, clone)
	out := clone
	return &out, nil
}

func (r *stubNotificationRepo) ListByRecipient(_ context.Context, recipientID string) ([]domain.Notification, error) {
	var out []domain.Notification
	for _, n := range r.inserted {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *stubNotificationRepo) MarkRead(_ context.Context, id, recipientID string) error {
	for i, n := range r.inserted {
		if n.ID == id && n.RecipientID == recipientID {
			r.inserted[i].Read = true
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}

type memoryDedup struct {
	marked map[string]bool
}

func newMemoryDedup() *memoryDedup {
	return &memoryDedup{marked: make(map[string]bool)}
}

func (d *memoryDedup) key(recipientID, kind, reference string) string {
	return recipientID + ":" + kind + ":" + reference
}

func (d *memoryDedup) IsDuplicate(_ context.Context, recipientID, kind, reference string) (bool, error) {
	return d.marked[d.key(recipientID, kind, reference)], nil
}

func (d *memoryDedup) Mark(_ context.Context, recipientID, kind, reference string) error {
	d.marked[d.key(recipientID, kind, reference)] = true
	return nil
}

func TestNotificationService_Process_Delivers(t *testing.T) {
	repo := &stubNotificationRepo{}
	svc := NewNotificationService(repo, newMemoryDedup(), zerolog.Nop())

	in := ports.NotificationInput{
		RecipientID: "u1",
		Kind:        string(domain.NotifyApplicationReceived),
		Reference:   "app_1",
		Body:        "New application",
	}
	delivered, err := svc.Process(context.Background(), in)
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if !delivered {
		t.Fatalf("expected first delivery to report delivered")
	}

	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 delivered notification, got %d", len(repo.inserted))
	}
	n := repo.inserted[0]
	if n.RecipientID != "u1" || n.Kind != domain.NotifyApplicationReceived || n.Reference != "app_1" {
		t.Fatalf("unexpected notification: %+v", n)
	}
	if n.Read {
		t.Fatalf("new notification must start unread")
	}
	if n.CreatedAt.IsZero() || n.CreatedAt.After(time.Now().UTC()) {
		t.Fatalf("unexpected CreatedAt: %v", n.CreatedAt)
	}
}

func TestNotificationService_Process_SkipsDuplicate(t *testing.T) {
	repo := &stubNotificationRepo{}
	svc := NewNotificationService(repo, newMemoryDedup(), zerolog.Nop())

	in := ports.NotificationInput{
		RecipientID: "u1",
		Kind:        string(domain.NotifyMessageReceived),
		Reference:   "msg_1",
	}
	delivered, err := svc.Process(context.Background(), in)
	if err != nil {
		t.Fatalf("first Process returned error: %v", err)
	}
	if !delivered {
		t.Fatalf("expected first occurrence to deliver")
	}

	// The second occurrence is suppressed: no insert, no error, and the
	// delivered flag must be false so callers do not count it.
	delivered, err = svc.Process(context.Background(), in)
	if err != nil {
		t.Fatalf("second Process returned error: %v", err)
	}
	if delivered {
		t.Fatalf("suppressed duplicate must not report delivered")
	}

	if len(repo.inserted) != 1 {
		t.Fatalf("expected duplicate to be suppressed, got %d deliveries", len(repo.inserted))
	}
}

func TestNotificationService_Process_DistinctReferencesBothDeliver(t *testing.T) {
	repo := &stubNotificationRepo{}
	svc := NewNotificationService(repo, newMemoryDedup(), zerolog.Nop())

	for _, ref := range []string{"msg_1", "msg_2"} {
		in := ports.NotificationInput{RecipientID: "u1", Kind: string(domain.NotifyMessageReceived), Reference: ref}
		delivered, err := svc.Process(context.Background(), in)
		if err != nil {
			t.Fatalf("Process(%s) returned error: %v", ref, err)
		}
		if !delivered {
			t.Fatalf("Process(%s) expected delivery", ref)
		}
	}

	if len(repo.inserted) != 2 {
		t.Fatalf("expected 2 deliveries for distinct references, got %d", len(repo.inserted))
	}
}

func TestNotificationService_MarkRead_ScopedToRecipient(t *testing.T) {
	repo := &stubNotificationRepo{}
	svc := NewNotificationService(repo, newMemoryDedup(), zerolog.Nop())

	in := ports.NotificationInput{RecipientID: "u1", Kind: string(domain.NotifyMessageReceived), Reference: "msg_1"}
	if _, err := svc.Process(context.Background(), in); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	id := repo.inserted[0].ID

	// Another user cannot mark u1's notification read.
	if err := svc.MarkRead(context.Background(), id, "u2"); err == nil {
		t.Fatalf("expected error when marking another user's notification")
	}

	if err := svc.MarkRead(context.Background(), id, "u1"); err != nil {
		t.Fatalf("MarkRead returned error: %v", err)
	}
	if !repo.inserted[0].Read {
		t.Fatalf("expected notification to be marked read")
	}
}
