package shared

import (
	"time"

	"court-booking/internal/domain/user"
)

// Outbox message kinds
const (
	KindBookingConfirmed = "booking.confirmed"
	// A booking cancelled before its payment settled; the money needs a manual refund.
	KindBookingPaidAfterCancel = "booking.paid_after_cancel"
)

type OutboxMessage struct {
	ID         string
	Kind       string
	RoutingKey string
	Payload    []byte
	Attempts   int32
	RunAt      time.Time
}

// BookingConfirmedEvent is the payload of KindBookingConfirmed and KindBookingPaidAfterCancel messages.
type BookingConfirmedEvent struct {
	BookingID   string    `json:"booking_id"`
	UserID      string    `json:"user_id"`
	CourtID     string    `json:"court_id"`
	Date        string    `json:"date"`
	TimeSlot    string    `json:"time_slot"`
	AmountMinor int64     `json:"amount_minor"`
	Currency    string    `json:"currency"`
	SessionID   string    `json:"session_id"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID string
	Role   user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

// CanAccess reports whether the actor owns the resource or is an admin.
func (a Actor) CanAccess(ownerID string) bool {
	return a.IsAdmin() || a.UserID == ownerID
}
