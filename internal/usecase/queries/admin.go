package queries

import (
	"context"

	"court-booking/internal/domain/booking"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"
)

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/queries/admin.go -package=queriesmock

type StatsReadStore interface {
	Stats(ctx context.Context) (*StatsView, error)
}

type AdminQueries interface {
	ListBookings(ctx context.Context, actor shared.Actor, status string) ([]*BookingView, error)
	ListUsers(ctx context.Context, actor shared.Actor) ([]*UserView, error)
	Stats(ctx context.Context, actor shared.Actor) (*StatsView, error)
}

type adminQueriesImpl struct {
	bookings BookingReadStore
	users    UserReadStore
	stats    StatsReadStore
}

func NewAdminQueries(bookings BookingReadStore, users UserReadStore, stats StatsReadStore) AdminQueries {
	return &adminQueriesImpl{
		bookings: bookings,
		users:    users,
		stats:    stats,
	}
}

// ListBookings filters by status when status is non-empty.
func (q *adminQueriesImpl) ListBookings(ctx context.Context, actor shared.Actor, status string) ([]*BookingView, error) {
	if !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}
	var filter *string
	if status != "" {
		st, err := booking.NewStatus(status)
		if err != nil {
			return nil, err
		}
		s := st.String()
		filter = &s
	}
	rows, err := q.bookings.List(ctx, filter, MaxAdminListSize)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*BookingView{}
	}
	return rows, nil
}

func (q *adminQueriesImpl) ListUsers(ctx context.Context, actor shared.Actor) ([]*UserView, error) {
	if !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}
	rows, err := q.users.List(ctx, MaxAdminListSize)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*UserView{}
	}
	return rows, nil
}

func (q *adminQueriesImpl) Stats(ctx context.Context, actor shared.Actor) (*StatsView, error) {
	if !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}
	return q.stats.Stats(ctx)
}
