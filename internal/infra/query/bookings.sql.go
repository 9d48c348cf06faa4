package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `booking_id, user_id, court_id, booking_date, time_slot, duration, price_minor, status, payment_status, created_at`

func scanBooking(row interface{ Scan(dest ...any) error }) (Booking, error) {
	var i Booking
	err := row.Scan(
		&i.BookingID,
		&i.UserID,
		&i.CourtID,
		&i.BookingDate,
		&i.TimeSlot,
		&i.Duration,
		&i.PriceMinor,
		&i.Status,
		&i.PaymentStatus,
		&i.CreatedAt,
	)
	return i, err
}

func collectBookings(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}) ([]Booking, error) {
	defer rows.Close()
	var items []Booking
	for rows.Next() {
		i, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// bookings_active_slot_key rejects a second live booking for the same slot.
const insertBooking = `-- name: InsertBooking :exec
INSERT INTO bookings (booking_id, user_id, court_id, booking_date, time_slot, duration, price_minor, status, payment_status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

type InsertBookingParams struct {
	BookingID     string
	UserID        string
	CourtID       string
	BookingDate   pgtype.Date
	TimeSlot      string
	Duration      int32
	PriceMinor    int64
	Status        string
	PaymentStatus string
	CreatedAt     pgtype.Timestamptz
}

func (q *Queries) InsertBooking(ctx context.Context, db DBTX, arg InsertBookingParams) error {
	_, err := db.Exec(ctx, insertBooking,
		arg.BookingID,
		arg.UserID,
		arg.CourtID,
		arg.BookingDate,
		arg.TimeSlot,
		arg.Duration,
		arg.PriceMinor,
		arg.Status,
		arg.PaymentStatus,
		arg.CreatedAt,
	)
	return err
}

const getBooking = `-- name: GetBooking :one
SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = $1
`

func (q *Queries) GetBooking(ctx context.Context, db DBTX, bookingID string) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, getBooking, bookingID))
}

const listOccupiedSlots = `-- name: ListOccupiedSlots :many
SELECT time_slot FROM bookings
WHERE court_id = $1 AND booking_date = $2 AND status <> 'cancelled'
`

type ListOccupiedSlotsParams struct {
	CourtID     string
	BookingDate pgtype.Date
}

func (q *Queries) ListOccupiedSlots(ctx context.Context, db DBTX, arg ListOccupiedSlotsParams) ([]string, error) {
	rows, err := db.Query(ctx, listOccupiedSlots, arg.CourtID, arg.BookingDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []string
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, err
		}
		items = append(items, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listBookingsByUser = `-- name: ListBookingsByUser :many
SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1
ORDER BY created_at DESC, booking_id DESC LIMIT $2
`

type ListBookingsByUserParams struct {
	UserID string
	Limit  int32
}

func (q *Queries) ListBookingsByUser(ctx context.Context, db DBTX, arg ListBookingsByUserParams) ([]Booking, error) {
	rows, err := db.Query(ctx, listBookingsByUser, arg.UserID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

const listBookings = `-- name: ListBookings :many
SELECT ` + bookingColumns + ` FROM bookings
WHERE ($1::text IS NULL OR status = $1::text)
ORDER BY created_at DESC, booking_id DESC LIMIT $2
`

type ListBookingsParams struct {
	Status pgtype.Text
	Limit  int32
}

func (q *Queries) ListBookings(ctx context.Context, db DBTX, arg ListBookingsParams) ([]Booking, error) {
	rows, err := db.Query(ctx, listBookings, arg.Status, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

const cancelBooking = `-- name: CancelBooking :execrows
UPDATE bookings SET status = 'cancelled'
WHERE booking_id = $1 AND status <> 'cancelled'
`

// CancelBooking never touches payment_status.
func (q *Queries) CancelBooking(ctx context.Context, db DBTX, bookingID string) (int64, error) {
	tag, err := db.Exec(ctx, cancelBooking, bookingID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// A cancelled booking keeps its status when payment lands afterwards.
// pgx.ErrNoRows means the booking was already paid.
const confirmBookingPayment = `-- name: ConfirmBookingPayment :one
UPDATE bookings
SET payment_status = 'paid',
    status = CASE WHEN status = 'cancelled' THEN status ELSE 'confirmed' END
WHERE booking_id = $1 AND payment_status <> 'paid'
RETURNING status
`

func (q *Queries) ConfirmBookingPayment(ctx context.Context, db DBTX, bookingID string) (string, error) {
	var status string
	err := db.QueryRow(ctx, confirmBookingPayment, bookingID).Scan(&status)
	return status, err
}

const hasPaidBookingForCourt = `-- name: HasPaidBookingForCourt :one
SELECT EXISTS (
    SELECT 1 FROM bookings
    WHERE user_id = $1 AND court_id = $2 AND status = 'confirmed' AND payment_status = 'paid'
)
`

type HasPaidBookingForCourtParams struct {
	UserID  string
	CourtID string
}

func (q *Queries) HasPaidBookingForCourt(ctx context.Context, db DBTX, arg HasPaidBookingForCourtParams) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, hasPaidBookingForCourt, arg.UserID, arg.CourtID).Scan(&exists)
	return exists, err
}

// One statement so the three figures come from the same snapshot.
const getStats = `-- name: GetStats :one
SELECT
    (SELECT count(*) FROM bookings) AS total_bookings,
    (SELECT count(*) FROM users) AS total_users,
    (SELECT COALESCE(SUM(price_minor), 0) FROM bookings WHERE payment_status = 'paid')::bigint AS total_revenue_minor
`

type GetStatsRow struct {
	TotalBookings     int64
	TotalUsers        int64
	TotalRevenueMinor int64
}

func (q *Queries) GetStats(ctx context.Context, db DBTX) (GetStatsRow, error) {
	var i GetStatsRow
	err := db.QueryRow(ctx, getStats).Scan(&i.TotalBookings, &i.TotalUsers, &i.TotalRevenueMinor)
	return i, err
}
