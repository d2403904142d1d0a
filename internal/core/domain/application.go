package domain

import (
	"errors"
	"time"
)

// ApplicationStatus is the review state of a player's trial application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationAccepted ApplicationStatus = "ACCEPTED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

var ErrApplicationNotFound = errors.New("application not found")
var ErrApplicationExists = errors.New("application already exists")
var ErrInvalidStatus = errors.New("invalid application status")

// Application links a player to a trial. One application per (trial, player).
type Application struct {
	ID        string            `json:"id"`
	TrialID   string            `json:"trial_id"`
	PlayerID  string            `json:"player_id"`
	Status    ApplicationStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// ParseApplicationStatus validates a reviewer-supplied status transition
// target. PENDING is not a valid target; applications start there.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	switch ApplicationStatus(s) {
	case ApplicationAccepted:
		return ApplicationAccepted, nil
	case ApplicationRejected:
		return ApplicationRejected, nil
	}
	return "", ErrInvalidStatus
}
