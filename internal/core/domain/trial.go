package domain

import (
	"errors"
	"time"
)

// TrialKind distinguishes one-off trials from tournaments in listings.
type TrialKind string

const (
	KindTrial      TrialKind = "TRIAL"
	KindTournament TrialKind = "TOURNAMENT"
)

var ErrTrialNotFound = errors.New("trial not found")
var ErrTrialClosed = errors.New("trial closed")
var ErrInvalidKind = errors.New("invalid trial kind")

// Trial is a listing created by an academy that players apply to.
type Trial struct {
	ID        string    `json:"id"`
	Kind      TrialKind `json:"kind"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	Date      time.Time `json:"date"`
	FeeCents  int64     `json:"fee_cents"`
	OwnerID   string    `json:"owner_id"`
	Open      bool      `json:"open"`
	CreatedAt time.Time `json:"created_at"`
}

// ParseTrialKind validates a listing kind, defaulting empty input to TRIAL.
func ParseTrialKind(s string) (TrialKind, error) {
	switch TrialKind(s) {
	case "":
		return KindTrial, nil
	case KindTrial:
		return KindTrial, nil
	case KindTournament:
		return KindTournament, nil
	}
	return "", ErrInvalidKind
}
