//go:build unit || e2e

package builder

import (
	"time"

	"court-booking/internal/domain/payment"
	"court-booking/internal/infra/query"
	"court-booking/internal/pkg/ident"

	"github.com/jackc/pgx/v5/pgtype"
)

type TransactionBuilder struct {
	ID          string
	BookingID   string
	UserID      string
	SessionID   string
	AmountMinor int64
	Currency    string
	Status      string
	Now         time.Time
}

func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{
		ID:          ident.New(ident.PrefixTransaction),
		BookingID:   "booking_0123456789ab",
		UserID:      "user_0123456789ab",
		SessionID:   "cs_test_a1b2c3",
		AmountMinor: 10000,
		Currency:    "aed",
		Status:      "pending",
		Now:         time.Date(2025, 2, 20, 12, 5, 0, 0, time.UTC),
	}
}

func (b *TransactionBuilder) BuildDomain() *payment.Transaction {
	return payment.ReconstructTransaction(
		b.ID, b.BookingID, b.UserID, b.SessionID, b.AmountMinor, b.Currency,
		payment.Status(b.Status), b.Now, b.Now,
	)
}

func (b *TransactionBuilder) BuildInfra() query.PaymentTransaction {
	return query.PaymentTransaction{
		TransactionID: b.ID,
		BookingID:     b.BookingID,
		UserID:        b.UserID,
		SessionID:     b.SessionID,
		AmountMinor:   b.AmountMinor,
		Currency:      b.Currency,
		PaymentStatus: b.Status,
		CreatedAt:     pgtype.Timestamptz{Time: b.Now, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: b.Now, Valid: true},
	}
}

func (b *TransactionBuilder) ForBooking(bookingID, userID string) *TransactionBuilder {
	b.BookingID = bookingID
	b.UserID = userID
	return b
}

func (b *TransactionBuilder) WithSessionID(sessionID string) *TransactionBuilder {
	b.SessionID = sessionID
	return b
}

func (b *TransactionBuilder) AsPaid() *TransactionBuilder {
	b.Status = "paid"
	return b
}

func (b *TransactionBuilder) AsFailed() *TransactionBuilder {
	b.Status = "failed"
	return b
}
