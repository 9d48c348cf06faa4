package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const paymentTransactionColumns = `transaction_id, booking_id, user_id, session_id, amount_minor, currency, payment_status, created_at, updated_at`

const insertPaymentTransaction = `-- name: InsertPaymentTransaction :exec
INSERT INTO payment_transactions (transaction_id, booking_id, user_id, session_id, amount_minor, currency, payment_status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

type InsertPaymentTransactionParams struct {
	TransactionID string
	BookingID     string
	UserID        string
	SessionID     string
	AmountMinor   int64
	Currency      string
	PaymentStatus string
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

func (q *Queries) InsertPaymentTransaction(ctx context.Context, db DBTX, arg InsertPaymentTransactionParams) error {
	_, err := db.Exec(ctx, insertPaymentTransaction,
		arg.TransactionID,
		arg.BookingID,
		arg.UserID,
		arg.SessionID,
		arg.AmountMinor,
		arg.Currency,
		arg.PaymentStatus,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getPaymentTransactionBySession = `-- name: GetPaymentTransactionBySession :one
SELECT ` + paymentTransactionColumns + ` FROM payment_transactions WHERE session_id = $1
`

func (q *Queries) GetPaymentTransactionBySession(ctx context.Context, db DBTX, sessionID string) (PaymentTransaction, error) {
	var i PaymentTransaction
	err := db.QueryRow(ctx, getPaymentTransactionBySession, sessionID).Scan(
		&i.TransactionID,
		&i.BookingID,
		&i.UserID,
		&i.SessionID,
		&i.AmountMinor,
		&i.Currency,
		&i.PaymentStatus,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

// Compare-and-set: no row comes back once the transaction is already paid.
const markTransactionPaid = `-- name: MarkTransactionPaid :one
UPDATE payment_transactions SET payment_status = 'paid', updated_at = $2
WHERE session_id = $1 AND payment_status <> 'paid'
RETURNING booking_id
`

type MarkTransactionParams struct {
	SessionID string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) MarkTransactionPaid(ctx context.Context, db DBTX, arg MarkTransactionParams) (string, error) {
	var bookingID string
	err := db.QueryRow(ctx, markTransactionPaid, arg.SessionID, arg.UpdatedAt).Scan(&bookingID)
	return bookingID, err
}

const markTransactionFailed = `-- name: MarkTransactionFailed :execrows
UPDATE payment_transactions SET payment_status = 'failed', updated_at = $2
WHERE session_id = $1 AND payment_status = 'pending'
`

func (q *Queries) MarkTransactionFailed(ctx context.Context, db DBTX, arg MarkTransactionParams) (int64, error) {
	tag, err := db.Exec(ctx, markTransactionFailed, arg.SessionID, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const failSiblingTransactions = `-- name: FailSiblingTransactions :execrows
UPDATE payment_transactions SET payment_status = 'failed', updated_at = $3
WHERE booking_id = $1 AND session_id <> $2 AND payment_status = 'pending'
`

type FailSiblingTransactionsParams struct {
	BookingID string
	SessionID string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) FailSiblingTransactions(ctx context.Context, db DBTX, arg FailSiblingTransactionsParams) (int64, error) {
	tag, err := db.Exec(ctx, failSiblingTransactions, arg.BookingID, arg.SessionID, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
