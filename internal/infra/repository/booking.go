package repository

import (
	"context"
	"log/slog"

	"court-booking/internal/domain/booking"
	"court-booking/internal/infra"
	"court-booking/internal/infra/query"
	"court-booking/internal/infra/repository/converter"
	"court-booking/internal/pkg/pgconv"
)

type BookingWriteQueries interface {
	InsertBooking(ctx context.Context, db query.DBTX, arg query.InsertBookingParams) error
	GetBooking(ctx context.Context, db query.DBTX, bookingID string) (query.Booking, error)
	ListOccupiedSlots(ctx context.Context, db query.DBTX, arg query.ListOccupiedSlotsParams) ([]string, error)
	CancelBooking(ctx context.Context, db query.DBTX, bookingID string) (int64, error)
	ConfirmBookingPayment(ctx context.Context, db query.DBTX, bookingID string) (string, error)
	HasPaidBookingForCourt(ctx context.Context, db query.DBTX, arg query.HasPaidBookingForCourtParams) (bool, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{queries: queries}
}

// Create surfaces a live-slot collision as KindDuplicateKey.
func (r *BookingRepository) Create(ctx context.Context, tx query.DBTX, b *booking.Booking) error {
	if err := r.queries.InsertBooking(ctx, tx, converter.BookingToInsertParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, tx query.DBTX, id string) (*booking.Booking, error) {
	row, err := r.queries.GetBooking(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking row", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BookingRepository) OccupiedSlots(ctx context.Context, tx query.DBTX, courtID string, date booking.Date) (map[booking.Slot]struct{}, error) {
	labels, err := r.queries.ListOccupiedSlots(ctx, tx, query.ListOccupiedSlotsParams{
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

// Cancel reports false when the booking was already cancelled or does not exist.
func (r *BookingRepository) Cancel(ctx context.Context, tx query.DBTX, bookingID string) (bool, error) {
	n, err := r.queries.CancelBooking(ctx, tx, bookingID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel booking", err)
	}
	return n > 0, nil
}

// ConfirmPayment reports applied=false when the booking was already paid.
// Otherwise status is the booking status after the write, which stays
// cancelled for a booking cancelled before the payment landed.
func (r *BookingRepository) ConfirmPayment(ctx context.Context, tx query.DBTX, bookingID string) (booking.Status, bool, error) {
	raw, err := r.queries.ConfirmBookingPayment(ctx, tx, bookingID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", false, nil
		}
		return "", false, infra.WrapRepoErr("failed to confirm booking payment", err)
	}
	status, err := booking.NewStatus(raw)
	if err != nil {
		return "", false, infra.WrapRepoErr("unexpected booking status", err, infra.KindDBFailure)
	}
	return status, true, nil
}

func (r *BookingRepository) HasPaidBookingForCourt(ctx context.Context, tx query.DBTX, userID, courtID string) (bool, error) {
	ok, err := r.queries.HasPaidBookingForCourt(ctx, tx, query.HasPaidBookingForCourtParams{
		UserID:  userID,
		CourtID: courtID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check paid booking", err)
	}
	return ok, nil
}
