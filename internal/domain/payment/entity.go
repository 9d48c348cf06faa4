package payment

import (
	"strings"
	"time"

	"court-booking/internal/pkg/ident"
)

// Transaction correlates one checkout attempt with one booking.
type Transaction struct {
	id        string
	bookingID string
	userID    string
	sessionID string
	amount    int64
	currency  string
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

type Checkout struct {
	BookingID   string
	UserID      string
	SessionID   string
	AmountMinor int64
	Currency    string
}

func NewTransaction(in Checkout, now time.Time) (*Transaction, error) {
	if strings.TrimSpace(in.SessionID) == "" {
		return nil, ErrEmptySessionID
	}
	if in.AmountMinor <= 0 {
		return nil, ErrNonPositiveAmount
	}
	if in.Currency == "" {
		return nil, ErrUnsupportedCurrency
	}
	return &Transaction{
		id:        ident.New(ident.PrefixTransaction),
		bookingID: in.BookingID,
		userID:    in.UserID,
		sessionID: in.SessionID,
		amount:    in.AmountMinor,
		currency:  strings.ToLower(in.Currency),
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructTransaction(id, bookingID, userID, sessionID string, amount int64, currency string, status Status, createdAt, updatedAt time.Time) *Transaction {
	return &Transaction{
		id:        id,
		bookingID: bookingID,
		userID:    userID,
		sessionID: sessionID,
		amount:    amount,
		currency:  currency,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (t *Transaction) ID() string           { return t.id }
func (t *Transaction) BookingID() string    { return t.bookingID }
func (t *Transaction) UserID() string       { return t.userID }
func (t *Transaction) SessionID() string    { return t.sessionID }
func (t *Transaction) Amount() int64        { return t.amount }
func (t *Transaction) Currency() string     { return t.currency }
func (t *Transaction) Status() Status       { return t.status }
func (t *Transaction) CreatedAt() time.Time { return t.createdAt }
func (t *Transaction) UpdatedAt() time.Time { return t.updatedAt }
