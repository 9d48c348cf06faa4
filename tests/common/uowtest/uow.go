//go:build unit

package uowtest

import (
	"context"

	"court-booking/internal/infra/query"
	"court-booking/internal/usecase/shared"
	sharedmock "court-booking/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// Harness wires a mocked UnitOfWork whose Within runs the callback against
// a mocked Tx, so tests set expectations on the repositories directly.
type Harness struct {
	UoW      *sharedmock.MockUnitOfWork
	Tx       *sharedmock.MockTx
	Reads    *sharedmock.MockCommandReads
	Users    *sharedmock.MockUserRepository
	Sessions *sharedmock.MockSessionRepository
	Courts   *sharedmock.MockCourtRepository
	Bookings *sharedmock.MockBookingRepository
	Payments *sharedmock.MockPaymentRepository
	Reviews  *sharedmock.MockReviewRepository
	Outbox   *sharedmock.MockOutboxRepository
}

func New(ctrl *gomock.Controller) *Harness {
	h := &Harness{
		UoW:      sharedmock.NewMockUnitOfWork(ctrl),
		Tx:       sharedmock.NewMockTx(ctrl),
		Reads:    sharedmock.NewMockCommandReads(ctrl),
		Users:    sharedmock.NewMockUserRepository(ctrl),
		Sessions: sharedmock.NewMockSessionRepository(ctrl),
		Courts:   sharedmock.NewMockCourtRepository(ctrl),
		Bookings: sharedmock.NewMockBookingRepository(ctrl),
		Payments: sharedmock.NewMockPaymentRepository(ctrl),
		Reviews:  sharedmock.NewMockReviewRepository(ctrl),
		Outbox:   sharedmock.NewMockOutboxRepository(ctrl),
	}

	h.UoW.EXPECT().CommandReads().Return(h.Reads).AnyTimes()
	h.Tx.EXPECT().Reads().Return(h.Reads).AnyTimes()
	h.Tx.EXPECT().Users().Return(h.Users).AnyTimes()
	h.Tx.EXPECT().Sessions().Return(h.Sessions).AnyTimes()
	h.Tx.EXPECT().Courts().Return(h.Courts).AnyTimes()
	h.Tx.EXPECT().Bookings().Return(h.Bookings).AnyTimes()
	h.Tx.EXPECT().Payments().Return(h.Payments).AnyTimes()
	h.Tx.EXPECT().Reviews().Return(h.Reviews).AnyTimes()
	h.Tx.EXPECT().Outbox().Return(h.Outbox).AnyTimes()
	h.Tx.EXPECT().DB().Return(nil).AnyTimes()
	return h
}

// ExpectWithin lets Within run its callback the given number of times.
func (h *Harness) ExpectWithin(times int) {
	h.UoW.EXPECT().
		Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, h.Tx)
		}).
		Times(times)
}

// ExpectWithDB runs WithDB callbacks against a nil connection.
func (h *Harness) ExpectWithDB(times int) {
	h.UoW.EXPECT().
		WithDB(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, query.DBTX) error) error {
			return fn(ctx, nil)
		}).
		Times(times)
}
