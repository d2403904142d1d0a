package domain

import (
	"errors"
	"time"
)

// PaymentStatus is the settlement state of a trial-fee payment.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentFailed  PaymentStatus = "FAILED"
)

var ErrPaymentNotFound = errors.New("payment not found")
var ErrInvalidPaymentStatus = errors.New("invalid payment status")

// Payment records a player's fee for an application. Amount is fixed from
// the trial's fee at creation time.
type Payment struct {
	ID            string        `json:"id"`
	PayerID       string        `json:"payer_id"`
	ApplicationID string        `json:"application_id"`
	AmountCents   int64         `json:"amount_cents"`
	Currency      string        `json:"currency"`
	Status        PaymentStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// ParsePaymentStatus validates an admin-supplied settlement state.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentPaid:
		return PaymentPaid, nil
	case PaymentFailed:
		return PaymentFailed, nil
	}
	return "", ErrInvalidPaymentStatus
}
