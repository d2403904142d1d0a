package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/scoutlink/player-platform/internal/core/domain"
	"github.com/scoutlink/player-platform/internal/core/ports"
)

func TestTrialService_Create_Defaults(t *testing.T) {
	repo := newStubTrialRepo()
	svc := NewTrialService(repo)

	trial, err := svc.Create(context.Background(), ports.CreateTrialInput{
		Title:   "Open Day",
		OwnerID: "academy_1",
		Date:    time.Now().Add(48 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if trial.Kind != domain.KindTrial {
		t.Fatalf("expected empty kind to default to TRIAL, got %s", trial.Kind)
	}
	if !trial.Open {
		t.Fatalf("expected new listing to be open")
	}
}

func TestTrialService_Create_InvalidKind(t *testing.T) {
	svc := NewTrialService(newStubTrialRepo())

	if _, err := svc.Create(context.Background(), ports.CreateTrialInput{Title: "x", Kind: "LEAGUE"}); !errors.Is(err, domain.ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
}

func TestTrialService_Close_OwnerOnly(t *testing.T) {
	repo := newStubTrialRepo(&domain.Trial{ID: "t1", OwnerID: "academy_1", Open: true})
	svc := NewTrialService(repo)

	if _, err := svc.Close(context.Background(), "t1", "academy_2", domain.RoleAcademy); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	trial, err := svc.Close(context.Background(), "t1", "academy_1", domain.RoleAcademy)
	if err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if trial.Open {
		t.Fatalf("expected trial to be closed")
	}
}

func TestTrialService_Close_AdminOverrides(t *testing.T) {
	repo := newStubTrialRepo(&domain.Trial{ID: "t1", OwnerID: "academy_1", Open: true})
	svc := NewTrialService(repo)

	trial, err := svc.Close(context.Background(), "t1", "admin_1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if trial.Open {
		t.Fatalf("expected trial to be closed")
	}
}
