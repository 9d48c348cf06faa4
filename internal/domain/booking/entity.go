package booking

import (
	"errors"
	"time"

	"court-booking/internal/domain/payment"
	"court-booking/internal/pkg/ident"
)

var (
	ErrSlotTaken        = errors.New("time slot not available")
	ErrAlreadyCancelled = errors.New("booking already cancelled")
	ErrInvalidStatus    = errors.New("invalid booking status")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type Booking struct {
	id            string
	userID        string
	courtID       string
	date          Date
	slot          Slot
	duration      time.Duration
	price         Money
	status        Status
	paymentStatus payment.Status
	createdAt     time.Time
}

type Request struct {
	UserID  string
	CourtID string
	Date    Date
	Slot    Slot
}

// NewBooking fixes the price at creation; it never changes afterwards.
func NewBooking(calc PriceCalculator, req Request, now time.Time) (*Booking, error) {
	if !req.Slot.IsValid() {
		return nil, ErrInvalidSlot
	}
	if req.Date.Time().IsZero() {
		return nil, ErrInvalidDate
	}
	return &Booking{
		id:            ident.New(ident.PrefixBooking),
		userID:        req.UserID,
		courtID:       req.CourtID,
		date:          req.Date,
		slot:          req.Slot,
		duration:      SlotDuration,
		price:         calc.PriceOf(req.Slot),
		status:        StatusPending,
		paymentStatus: payment.StatusPending,
		createdAt:     now,
	}, nil
}

func ReconstructBooking(
	id, userID, courtID string,
	date Date,
	slot Slot,
	price Money,
	status Status,
	paymentStatus payment.Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		userID:        userID,
		courtID:       courtID,
		date:          date,
		slot:          slot,
		duration:      SlotDuration,
		price:         price,
		status:        status,
		paymentStatus: paymentStatus,
		createdAt:     createdAt,
	}
}

// Cancel leaves the payment status untouched so paid bookings stay auditable.
func (b *Booking) Cancel() error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) IsOwnedBy(userID string) bool {
	return b.userID == userID
}

func (b *Booking) IsPaid() bool {
	return b.paymentStatus == payment.StatusPaid
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) ID() string                    { return b.id }
func (b *Booking) UserID() string                { return b.userID }
func (b *Booking) CourtID() string               { return b.courtID }
func (b *Booking) Date() Date                    { return b.date }
func (b *Booking) Slot() Slot                    { return b.slot }
func (b *Booking) Duration() time.Duration       { return b.duration }
func (b *Booking) Price() Money                  { return b.price }
func (b *Booking) Status() Status                { return b.status }
func (b *Booking) PaymentStatus() payment.Status { return b.paymentStatus }
func (b *Booking) CreatedAt() time.Time          { return b.createdAt }
