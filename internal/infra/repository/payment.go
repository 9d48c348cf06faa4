package repository

import (
	"context"
	"time"

	"court-booking/internal/domain/payment"
	"court-booking/internal/infra"
	"court-booking/internal/infra/query"
	"court-booking/internal/infra/repository/converter"
	"court-booking/internal/pkg/pgconv"
)

type PaymentWriteQueries interface {
	InsertPaymentTransaction(ctx context.Context, db query.DBTX, arg query.InsertPaymentTransactionParams) error
	GetPaymentTransactionBySession(ctx context.Context, db query.DBTX, sessionID string) (query.PaymentTransaction, error)
	MarkTransactionPaid(ctx context.Context, db query.DBTX, arg query.MarkTransactionParams) (string, error)
	MarkTransactionFailed(ctx context.Context, db query.DBTX, arg query.MarkTransactionParams) (int64, error)
	FailSiblingTransactions(ctx context.Context, db query.DBTX, arg query.FailSiblingTransactionsParams) (int64, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
}

func NewPaymentRepository(queries PaymentWriteQueries) *PaymentRepository {
	return &PaymentRepository{queries: queries}
}

func (r *PaymentRepository) Create(ctx context.Context, tx query.DBTX, t *payment.Transaction) error {
	if err := r.queries.InsertPaymentTransaction(ctx, tx, converter.TransactionToInsertParams(t)); err != nil {
		return infra.WrapRepoErr("failed to create payment transaction", err)
	}
	return nil
}

func (r *PaymentRepository) FindBySessionID(ctx context.Context, tx query.DBTX, sessionID string) (*payment.Transaction, error) {
	row, err := r.queries.GetPaymentTransactionBySession(ctx, tx, sessionID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment transaction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment transaction", err)
	}
	t, err := converter.TransactionFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert payment transaction row", err, infra.KindDBFailure)
	}
	return t, nil
}

func (r *PaymentRepository) MarkPaid(ctx context.Context, tx query.DBTX, sessionID string, now time.Time) (string, bool, error) {
	bookingID, err := r.queries.MarkTransactionPaid(ctx, tx, query.MarkTransactionParams{
		SessionID: sessionID,
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", false, nil
		}
		return "", false, infra.WrapRepoErr("failed to mark transaction paid", err)
	}
	return bookingID, true, nil
}

func (r *PaymentRepository) MarkFailed(ctx context.Context, tx query.DBTX, sessionID string, now time.Time) (bool, error) {
	n, err := r.queries.MarkTransactionFailed(ctx, tx, query.MarkTransactionParams{
		SessionID: sessionID,
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark transaction failed", err)
	}
	return n > 0, nil
}

func (r *PaymentRepository) FailSiblings(ctx context.Context, tx query.DBTX, bookingID, paidSessionID string, now time.Time) (int64, error) {
	n, err := r.queries.FailSiblingTransactions(ctx, tx, query.FailSiblingTransactionsParams{
		BookingID: bookingID,
		SessionID: paidSessionID,
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to invalidate sibling transactions", err)
	}
	return n, nil
}
