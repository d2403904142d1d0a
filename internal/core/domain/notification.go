package domain

import (
	"errors"
	"time"
)

// NotificationKind classifies what produced a notification.
type NotificationKind string

const (
	NotifyApplicationReceived NotificationKind = "application_received"
	NotifyApplicationDecided  NotificationKind = "application_decided"
	NotifyMessageReceived     NotificationKind = "message_received"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Notification is delivered asynchronously to a single recipient.
// Reference holds the id of the triggering record (application or message).
type Notification struct {
	ID          string           `json:"id"`
	RecipientID string           `json:"recipient_id"`
	Kind        NotificationKind `json:"kind"`
	Reference   string           `json:"reference"`
	Body        string           `json:"body"`
	Read        bool             `json:"read"`
	CreatedAt   time.Time        `json:"created_at"`
}
