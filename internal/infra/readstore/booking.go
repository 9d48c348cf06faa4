package readstore

import (
	"context"
	"log/slog"

	"court-booking/internal/domain/booking"
	"court-booking/internal/infra"
	"court-booking/internal/infra/query"
	"court-booking/internal/pkg/pgconv"
	"court-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	GetBooking(ctx context.Context, db query.DBTX, bookingID string) (query.Booking, error)
	ListBookingsByUser(ctx context.Context, db query.DBTX, arg query.ListBookingsByUserParams) ([]query.Booking, error)
	ListBookings(ctx context.Context, db query.DBTX, arg query.ListBookingsParams) ([]query.Booking, error)
	ListOccupiedSlots(ctx context.Context, db query.DBTX, arg query.ListOccupiedSlotsParams) ([]string, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      query.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db query.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id string) (*queries.BookingView, error) {
	row, err := r.queries.GetBooking(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return toBookingView(row), nil
}

func (r *BookingReadStore) ListByUser(ctx context.Context, userID string, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByUser(ctx, r.db, query.ListBookingsByUserParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	return toBookingViews(rows), nil
}

func (r *BookingReadStore) List(ctx context.Context, status *string, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookings(ctx, r.db, query.ListBookingsParams{
		Status: pgconv.StringPtrToPgtype(status),
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return toBookingViews(rows), nil
}

func (r *BookingReadStore) OccupiedSlots(ctx context.Context, courtID string, date booking.Date) (map[booking.Slot]struct{}, error) {
	labels, err := r.queries.ListOccupiedSlots(ctx, r.db, query.ListOccupiedSlotsParams{
		CourtID:     courtID,
		BookingDate: pgconv.DateToPgtype(date.Time()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupied slots", err)
	}
	occupied := make(map[booking.Slot]struct{}, len(labels))
	for _, label := range labels {
		slot, perr := booking.ParseSlot(label)
		if perr != nil {
			slog.Warn("skipping malformed time slot", "court_id", courtID, "time_slot", label)
			continue
		}
		occupied[slot] = struct{}{}
	}
	return occupied, nil
}

func toBookingViews(rows []query.Booking) []*queries.BookingView {
	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toBookingView(row))
	}
	return views
}

func toBookingView(row query.Booking) *queries.BookingView {
	return &queries.BookingView{
		ID:            row.BookingID,
		UserID:        row.UserID,
		CourtID:       row.CourtID,
		Date:          formatDate(row.BookingDate),
		TimeSlot:      row.TimeSlot,
		Duration:      row.Duration,
		PriceMinor:    row.PriceMinor,
		Status:        row.Status,
		PaymentStatus: row.PaymentStatus,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func formatDate(d pgtype.Date) string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(booking.DateLayout)
}
