//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"court-booking/internal/domain/payment"
	"court-booking/internal/infra"
	"court-booking/internal/infra/query"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPaymentWriteQueries struct {
	mock.Mock
}

func (m *MockPaymentWriteQueries) InsertPaymentTransaction(ctx context.Context, db query.DBTX, arg query.InsertPaymentTransactionParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockPaymentWriteQueries) GetPaymentTransactionBySession(ctx context.Context, db query.DBTX, sessionID string) (query.PaymentTransaction, error) {
	args := m.Called(ctx, db, sessionID)
	return args.Get(0).(query.PaymentTransaction), args.Error(1)
}

func (m *MockPaymentWriteQueries) MarkTransactionPaid(ctx context.Context, db query.DBTX, arg query.MarkTransactionParams) (string, error) {
	args := m.Called(ctx, db, arg)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentWriteQueries) MarkTransactionFailed(ctx context.Context, db query.DBTX, arg query.MarkTransactionParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentWriteQueries) FailSiblingTransactions(ctx context.Context, db query.DBTX, arg query.FailSiblingTransactionsParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func TestPaymentRepositoryMarkPaid(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 5, 0, 0, time.UTC)

	tests := []struct {
		name             string
		returnBookingID  string
		returnErr        error
		wantBookingID    string
		wantTransitioned bool
		wantErr          bool
	}{
		{name: "first confirmation", returnBookingID: "booking_0123456789ab", wantBookingID: "booking_0123456789ab", wantTransitioned: true},
		{name: "already paid", returnErr: pgx.ErrNoRows},
		{name: "database error", returnErr: assert.AnError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockPaymentWriteQueries)
			mockQueries.On("MarkTransactionPaid", mock.Anything, mock.Anything, mock.MatchedBy(func(p query.MarkTransactionParams) bool {
				return p.SessionID == "cs_test_123" && p.UpdatedAt.Time.Equal(now)
			})).Return(tt.returnBookingID, tt.returnErr)

			bookingID, transitioned, err := NewPaymentRepository(mockQueries).MarkPaid(context.Background(), nil, "cs_test_123", now)
			if tt.wantErr {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBookingID, bookingID)
			assert.Equal(t, tt.wantTransitioned, transitioned)
		})
	}
}

func TestPaymentRepositoryFindBySessionID(t *testing.T) {
	row := query.PaymentTransaction{
		TransactionID: "txn_0123456789ab",
		BookingID:     "booking_0123456789ab",
		UserID:        "user_0123456789ab",
		SessionID:     "cs_test_123",
		AmountMinor:   10000,
		Currency:      "aed",
		PaymentStatus: "pending",
	}

	t.Run("found", func(t *testing.T) {
		mockQueries := new(MockPaymentWriteQueries)
		mockQueries.On("GetPaymentTransactionBySession", mock.Anything, mock.Anything, "cs_test_123").Return(row, nil)

		tx, err := NewPaymentRepository(mockQueries).FindBySessionID(context.Background(), nil, "cs_test_123")
		require.NoError(t, err)
		assert.Equal(t, payment.StatusPending, tx.Status())
		assert.Equal(t, int64(10000), tx.Amount())
	})

	t.Run("unknown session", func(t *testing.T) {
		mockQueries := new(MockPaymentWriteQueries)
		mockQueries.On("GetPaymentTransactionBySession", mock.Anything, mock.Anything, "cs_missing").
			Return(query.PaymentTransaction{}, pgx.ErrNoRows)

		_, err := NewPaymentRepository(mockQueries).FindBySessionID(context.Background(), nil, "cs_missing")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestPaymentRepositoryFailSiblings(t *testing.T) {
	mockQueries := new(MockPaymentWriteQueries)
	mockQueries.On("FailSiblingTransactions", mock.Anything, mock.Anything, mock.MatchedBy(func(p query.FailSiblingTransactionsParams) bool {
		return p.BookingID == "booking_0123456789ab" && p.SessionID == "cs_paid"
	})).Return(int64(2), nil)

	n, err := NewPaymentRepository(mockQueries).FailSiblings(context.Background(), nil, "booking_0123456789ab", "cs_paid", time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
