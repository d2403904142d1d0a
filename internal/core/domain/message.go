package domain

import "time"

// Message is a direct message between two users.
type Message struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender_id"`
	RecipientID string    `json:"recipient_id"`
	Body        string    `json:"body"`
	SentAt      time.Time `json:"sent_at"`
}

// Connection is a derived record: a counterpart the principal has exchanged
// at least one message with. It is never stored; it is computed from the
// message table and hydrated from the user store.
type Connection struct {
	UserID string `json:"user_id"`
	Name   string `json:"name,omitempty"`
	Role   Role   `json:"role"`
}
