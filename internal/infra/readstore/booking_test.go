//go:build unit

package readstore

import (
	"context"
	"testing"

	"court-booking/internal/domain/booking"
	"court-booking/internal/infra"
	"court-booking/internal/infra/query"
	"court-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingReadQueries struct {
	mock.Mock
}

func (m *MockBookingReadQueries) GetBooking(ctx context.Context, db query.DBTX, bookingID string) (query.Booking, error) {
	args := m.Called(ctx, db, bookingID)
	return args.Get(0).(query.Booking), args.Error(1)
}

func (m *MockBookingReadQueries) ListBookingsByUser(ctx context.Context, db query.DBTX, arg query.ListBookingsByUserParams) ([]query.Booking, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]query.Booking), args.Error(1)
}

func (m *MockBookingReadQueries) ListBookings(ctx context.Context, db query.DBTX, arg query.ListBookingsParams) ([]query.Booking, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]query.Booking), args.Error(1)
}

func (m *MockBookingReadQueries) ListOccupiedSlots(ctx context.Context, db query.DBTX, arg query.ListOccupiedSlotsParams) ([]string, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]string), args.Error(1)
}

func TestBookingFindByID(t *testing.T) {
	b := builder.NewBookingBuilder().AsConfirmedPaid()

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockBookingReadQueries)
		mockQueries.On("GetBooking", mock.Anything, mock.Anything, b.ID).Return(b.BuildInfra(), nil)

		view, err := NewBookingReadStore(mockQueries, nil).FindByID(context.Background(), b.ID)
		require.NoError(t, err)
		if diff := cmp.Diff(b.BuildReadModel(), view); diff != "" {
			t.Errorf("booking view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockBookingReadQueries)
		mockQueries.On("GetBooking", mock.Anything, mock.Anything, "booking_missing").Return(query.Booking{}, pgx.ErrNoRows)

		_, err := NewBookingReadStore(mockQueries, nil).FindByID(context.Background(), "booking_missing")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestBookingList(t *testing.T) {
	status := "confirmed"
	mockQueries := new(MockBookingReadQueries)
	mockQueries.On("ListBookings", mock.Anything, mock.Anything, query.ListBookingsParams{
		Status: pgtype.Text{String: status, Valid: true},
		Limit:  100,
	}).Return([]query.Booking{builder.NewBookingBuilder().AsConfirmedPaid().BuildInfra()}, nil)

	views, err := NewBookingReadStore(mockQueries, nil).List(context.Background(), &status, 100)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "confirmed", views[0].Status)

	mockQueries.On("ListBookings", mock.Anything, mock.Anything, query.ListBookingsParams{Limit: 100}).
		Return([]query.Booking{}, nil)
	views, err = NewBookingReadStore(mockQueries, nil).List(context.Background(), nil, 100)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestBookingOccupiedSlots(t *testing.T) {
	date, err := booking.ParseDate("2025-03-01")
	require.NoError(t, err)

	mockQueries := new(MockBookingReadQueries)
	mockQueries.On("ListOccupiedSlots", mock.Anything, mock.Anything, mock.MatchedBy(func(p query.ListOccupiedSlotsParams) bool {
		return p.CourtID == "court_padel_001" && p.BookingDate.Time.Equal(date.Time())
	})).Return([]string{"10:00"}, nil)

	occupied, err := NewBookingReadStore(mockQueries, nil).OccupiedSlots(context.Background(), "court_padel_001", date)
	require.NoError(t, err)
	assert.Equal(t, map[booking.Slot]struct{}{booking.Slot(10): {}}, occupied)
}
