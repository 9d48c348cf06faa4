//go:build unit

package booking_test

import (
	"testing"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/payment"
	"court-booking/internal/pkg/ident"
	"court-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	tariff, err := booking.NewHourlyTariff(10000, 13500)
	require.NoError(t, err)
	now := time.Date(2025, 2, 20, 12, 0, 0, 0, time.UTC)

	t.Run("prices the slot and starts pending", func(t *testing.T) {
		req := builder.NewBookingBuilder().WithSlot("2025-03-01", "17:00").BuildRequest()

		b, err := booking.NewBooking(tariff, req, now)
		require.NoError(t, err)

		assert.True(t, ident.HasPrefix(b.ID(), ident.PrefixBooking))
		assert.Equal(t, int64(13500), b.Price().Minor())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, payment.StatusPending, b.PaymentStatus())
		assert.Equal(t, time.Hour, b.Duration())
		assert.Equal(t, "2025-03-01", b.Date().String())
		assert.Equal(t, now, b.CreatedAt())
	})

	t.Run("rejects invalid slot", func(t *testing.T) {
		req := builder.NewBookingBuilder().BuildRequest()
		req.Slot = booking.Slot(7)

		_, err := booking.NewBooking(tariff, req, now)
		require.ErrorIs(t, err, booking.ErrInvalidSlot)
	})

	t.Run("rejects zero date", func(t *testing.T) {
		req := builder.NewBookingBuilder().BuildRequest()
		req.Date = booking.Date{}

		_, err := booking.NewBooking(tariff, req, now)
		require.ErrorIs(t, err, booking.ErrInvalidDate)
	})
}

func TestBookingCancel(t *testing.T) {
	t.Run("pending booking", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, b.Cancel())
		assert.True(t, b.IsCancelled())
	})

	t.Run("paid booking keeps payment status", func(t *testing.T) {
		b := builder.NewBookingBuilder().AsConfirmedPaid().BuildDomain()
		require.NoError(t, b.Cancel())
		assert.True(t, b.IsCancelled())
		assert.True(t, b.IsPaid())
	})

	t.Run("already cancelled", func(t *testing.T) {
		b := builder.NewBookingBuilder().AsCancelled().BuildDomain()
		require.ErrorIs(t, b.Cancel(), booking.ErrAlreadyCancelled)
	})
}

func TestBookingOwnership(t *testing.T) {
	b := builder.NewBookingBuilder().WithUserID("user_aaaaaaaaaaaa").BuildDomain()
	assert.True(t, b.IsOwnedBy("user_aaaaaaaaaaaa"))
	assert.False(t, b.IsOwnedBy("user_bbbbbbbbbbbb"))
}
