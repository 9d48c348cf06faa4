package queries

import (
	"context"

	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

type BookingReadStore interface {
	FindByID(ctx context.Context, id string) (*BookingView, error)
	ListByUser(ctx context.Context, userID string, limit int32) ([]*BookingView, error)
	List(ctx context.Context, status *string, limit int32) ([]*BookingView, error)
}

type BookingQueries interface {
	Get(ctx context.Context, id string, actor shared.Actor) (*BookingView, error)
	ListMine(ctx context.Context, actor shared.Actor) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) Get(ctx context.Context, id string, actor shared.Actor) (*BookingView, error) {
	b, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if !actor.CanAccess(b.UserID) {
		return nil, errs.ErrForbidden
	}
	return b, nil
}

func (q *bookingQueriesImpl) ListMine(ctx context.Context, actor shared.Actor) ([]*BookingView, error) {
	rows, err := q.readStore.ListByUser(ctx, actor.UserID, MaxListSize)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*BookingView{}
	}
	return rows, nil
}
