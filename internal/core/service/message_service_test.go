package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/scoutlink/player-platform/internal/core/domain"
)

type stubMessageRepo struct {
	messages []domain.Message
	nextID   int
}

func (r *stubMessageRepo) Insert(_ context.Context, msg *domain.Message) (*domain.Message, error) {
	r.nextID++
	clone := *msg
	clone.ID = fmt.Sprintf("msg_%d", r.nextID)
	r.messages = append(r.messages, clone)
	out := clone
	return &out, nil
}

func (r *stubMessageRepo) Thread(_ context.Context, userA, userB string) ([]domain.Message, error) {
	var out []domain.Message
	for _, m := range r.messages {
		if (m.SenderID == userA && m.RecipientID == userB) || (m.SenderID == userB && m.RecipientID == userA) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *stubMessageRepo) CounterpartIDs(_ context.Context, userID string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, m := range r.messages {
		var other string
		switch userID {
		case m.SenderID:
			other = m.RecipientID
		case m.RecipientID:
			other = m.SenderID
		default:
			continue
		}
		if !seen[other] {
			seen[other] = true
			out = append(out, other)
		}
	}
	return out, nil
}

type memoryConnectionCache struct {
	entries map[string][]domain.Connection
	gets    int
	hits    int
	sets    int
}

func newMemoryConnectionCache() *memoryConnectionCache {
	return &memoryConnectionCache{entries: make(map[string][]domain.Connection)}
}

func (c *memoryConnectionCache) Get(_ context.Context, userID string) ([]domain.Connection, bool, error) {
	c.gets++
	if conns, ok := c.entries[userID]; ok {
		c.hits++
		return conns, true, nil
	}
	return nil, false, nil
}

func (c *memoryConnectionCache) Set(_ context.Context, userID string, conns []domain.Connection) error {
	c.sets++
	c.entries[userID] = conns
	return nil
}

func (c *memoryConnectionCache) Invalidate(_ context.Context, userID string) error {
	delete(c.entries, userID)
	return nil
}

func seedUsers(repo *stubUserRepo, users ...*domain.User) {
	for _, u := range users {
		repo.users[u.Email] = u
	}
}

func TestMessageService_Send_NotifiesAndInvalidates(t *testing.T) {
	userRepo := newStubUserRepo()
	seedUsers(userRepo,
		&domain.User{ID: "p1", Email: "p1@x.com", Role: domain.RolePlayer, Active: true},
		&domain.User{ID: "a1", Email: "a1@x.com", Role: domain.RoleAgent, Active: true},
	)
	cache := newMemoryConnectionCache()
	cache.entries["p1"] = []domain.Connection{}
	cache.entries["a1"] = []domain.Connection{}
	notifier := &recordingNotifier{}
	svc := NewMessageService(&stubMessageRepo{}, userRepo, cache, notifier, zerolog.Nop())

	msg, err := svc.Send(context.Background(), "p1", "a1", "hello")
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if msg.ID == "" {
		t.Fatalf("expected message id")
	}
	if msg.SentAt.IsZero() {
		t.Fatalf("expected SentAt to be set")
	}

	// Both sides' cached connection lists must be dropped.
	if _, ok := cache.entries["p1"]; ok {
		t.Fatalf("sender cache not invalidated")
	}
	if _, ok := cache.entries["a1"]; ok {
		t.Fatalf("recipient cache not invalidated")
	}

	if len(notifier.enqueued) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.enqueued))
	}
	n := notifier.enqueued[0]
	if n.RecipientID != "a1" || n.Kind != string(domain.NotifyMessageReceived) || n.Reference != msg.ID {
		t.Fatalf("unexpected notification: %+v", n)
	}
}

func TestMessageService_Send_UnknownRecipient(t *testing.T) {
	svc := NewMessageService(&stubMessageRepo{}, newStubUserRepo(), newMemoryConnectionCache(), &recordingNotifier{}, zerolog.Nop())

	if _, err := svc.Send(context.Background(), "p1", "ghost", "hello"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestMessageService_Connections_DerivedFromMessages(t *testing.T) {
	userRepo := newStubUserRepo()
	seedUsers(userRepo,
		&domain.User{ID: "p1", Email: "p1@x.com", Role: domain.RolePlayer, Active: true},
		&domain.User{ID: "a1", Email: "a1@x.com", Name: "Agent One", Role: domain.RoleAgent, Active: true},
		&domain.User{ID: "c1", Email: "c1@x.com", Name: "Club", Role: domain.RoleAcademy, Active: true},
	)
	msgRepo := &stubMessageRepo{}
	now := time.Now().UTC()
	msgRepo.messages = []domain.Message{
		{ID: "m1", SenderID: "p1", RecipientID: "a1", Body: "hi", SentAt: now},
		{ID: "m2", SenderID: "a1", RecipientID: "p1", Body: "hello", SentAt: now},
		{ID: "m3", SenderID: "c1", RecipientID: "p1", Body: "trial offer", SentAt: now},
	}
	cache := newMemoryConnectionCache()
	svc := NewMessageService(msgRepo, userRepo, cache, &recordingNotifier{}, zerolog.Nop())

	conns, err := svc.Connections(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Connections returned error: %v", err)
	}
	if len(conns) != 2 {
		t.Fatalf("expected 2 distinct counterparts, got %d", len(conns))
	}

	byID := make(map[string]domain.Connection)
	for _, c := range conns {
		byID[c.UserID] = c
	}
	if byID["a1"].Name != "Agent One" || byID["a1"].Role != domain.RoleAgent {
		t.Fatalf("expected hydrated agent connection, got %+v", byID["a1"])
	}
	if byID["c1"].Role != domain.RoleAcademy {
		t.Fatalf("expected hydrated academy connection, got %+v", byID["c1"])
	}
	if cache.sets != 1 {
		t.Fatalf("expected derived list to be cached")
	}
}

func TestMessageService_Connections_CacheHitSkipsDerivation(t *testing.T) {
	userRepo := newStubUserRepo()
	cache := newMemoryConnectionCache()
	cache.entries["p1"] = []domain.Connection{{UserID: "a1", Name: "Agent One", Role: domain.RoleAgent}}
	svc := NewMessageService(&stubMessageRepo{}, userRepo, cache, &recordingNotifier{}, zerolog.Nop())

	conns, err := svc.Connections(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Connections returned error: %v", err)
	}
	if len(conns) != 1 || conns[0].UserID != "a1" {
		t.Fatalf("expected cached connection list, got %+v", conns)
	}
	if cache.hits != 1 {
		t.Fatalf("expected cache hit")
	}
	if cache.sets != 0 {
		t.Fatalf("cache hit must not rewrite the entry")
	}
}

func TestMessageService_Connections_NoMessages(t *testing.T) {
	svc := NewMessageService(&stubMessageRepo{}, newStubUserRepo(), newMemoryConnectionCache(), &recordingNotifier{}, zerolog.Nop())

	conns, err := svc.Connections(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Connections returned error: %v", err)
	}
	if len(conns) != 0 {
		t.Fatalf("expected empty connection list, got %+v", conns)
	}
}
