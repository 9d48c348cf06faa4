//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/court"
	"court-booking/internal/domain/user"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"
	"court-booking/internal/usecase/shared"
	"court-booking/tests/common/builder"
	"court-booking/tests/common/uowtest"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	h        *uowtest.Harness
	clock    *clock.MockClock
	commands commands.BookingCommands
	actor    shared.Actor
	padel    *court.Court
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.h = uowtest.New(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2025, 2, 20, 12, 0, 0, 0, time.UTC))
	tariff, err := booking.NewHourlyTariff(10000, 15000)
	s.Require().NoError(err)
	s.commands = commands.NewBookingCommands(s.h.UoW, tariff, s.clock)
	s.actor = shared.Actor{UserID: "user_0123456789ab", Role: user.RoleUser}
	s.padel = court.ReconstructCourt(court.SeedPadelID,
		court.LocalizedText{Ar: "ملعب البادل", En: "Padel Court"},
		court.LocalizedText{}, court.CategoryPadel, nil, true, s.clock.Now())
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) TestCreate() {
	ctx := context.Background()
	in := commands.CreateBookingInput{CourtID: court.SeedPadelID, Date: "2025-03-01", TimeSlot: "10:00"}

	s.Run("success: pending booking priced from the tariff", func() {
		s.SetupTest()
		s.h.ExpectWithin(1)
		s.h.Reads.EXPECT().CourtByID(gomock.Any(), court.SeedPadelID).Return(s.padel, nil)
		s.h.Bookings.EXPECT().OccupiedSlots(gomock.Any(), gomock.Any(), court.SeedPadelID, gomock.Any()).
			Return(map[booking.Slot]struct{}{}, nil)
		s.h.Bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		b, err := s.commands.Create(ctx, s.actor, in)
		s.Require().NoError(err)
		s.Equal(s.actor.UserID, b.UserID())
		s.Equal("10:00", b.Slot().String())
		s.Equal("2025-03-01", b.Date().String())
		s.Equal(int64(10000), b.Price().Minor())
		s.Equal(booking.StatusPending, b.Status())
		s.Equal(s.clock.Now(), b.CreatedAt())
	})

	s.Run("success: evening slot uses the premium rate", func() {
		s.SetupTest()
		s.h.ExpectWithin(1)
		s.h.Reads.EXPECT().CourtByID(gomock.Any(), court.SeedPadelID).Return(s.padel, nil)
		s.h.Bookings.EXPECT().OccupiedSlots(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		s.h.Bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		evening := in
		evening.TimeSlot = "18:00"
		b, err := s.commands.Create(ctx, s.actor, evening)
		s.Require().NoError(err)
		s.Equal(int64(15000), b.Price().Minor())
	})

	s.Run("error: slot already occupied", func() {
		s.SetupTest()
		s.h.ExpectWithin(1)
		slot, _ := booking.ParseSlot("10:00")
		s.h.Reads.EXPECT().CourtByID(gomock.Any(), court.SeedPadelID).Return(s.padel, nil)
		s.h.Bookings.EXPECT().OccupiedSlots(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[booking.Slot]struct{}{slot: {}}, nil)

		_, err := s.commands.Create(ctx, s.actor, in)
		s.ErrorIs(err, booking.ErrSlotTaken)
	})

	s.Run("error: concurrent insert loses on the unique index", func() {
		s.SetupTest()
		s.h.ExpectWithin(1)
		s.h.Reads.EXPECT().CourtByID(gomock.Any(), court.SeedPadelID).Return(s.padel, nil)
		s.h.Bookings.EXPECT().OccupiedSlots(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		s.h.Bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("failed to create booking", nil, infra.KindDuplicateKey))

		_, err := s.commands.Create(ctx, s.actor, in)
		s.ErrorIs(err, booking.ErrSlotTaken)
	})

	s.Run("error: unknown court", func() {
		s.SetupTest()
		s.h.ExpectWithin(1)
		s.h.Reads.EXPECT().CourtByID(gomock.Any(), "court_missing").Return(nil, notFound())

		missing := in
		missing.CourtID = "court_missing"
		_, err := s.commands.Create(ctx, s.actor, missing)
		s.ErrorIs(err, queries.ErrCourtNotFound)
	})

	s.Run("error: inactive court", func() {
		s.SetupTest()
		s.h.ExpectWithin(1)
		inactive := court.ReconstructCourt(court.SeedPadelID, s.padel.Name(), s.padel.Description(),
			court.CategoryPadel, nil, false, s.clock.Now())
		s.h.Reads.EXPECT().CourtByID(gomock.Any(), court.SeedPadelID).Return(inactive, nil)

		_, err := s.commands.Create(ctx, s.actor, in)
		s.ErrorIs(err, queries.ErrCourtNotFound)
	})

	s.Run("error: validation happens before any database work", func() {
		for _, tc := range []struct {
			name string
			in   commands.CreateBookingInput
			err  error
		}{
			{name: "slot before opening", in: commands.CreateBookingInput{CourtID: court.SeedPadelID, Date: "2025-03-01", TimeSlot: "07:00"}, err: booking.ErrInvalidSlot},
			{name: "slot not on the hour", in: commands.CreateBookingInput{CourtID: court.SeedPadelID, Date: "2025-03-01", TimeSlot: "10:30"}, err: booking.ErrInvalidSlot},
			{name: "malformed date", in: commands.CreateBookingInput{CourtID: court.SeedPadelID, Date: "01/03/2025", TimeSlot: "10:00"}, err: booking.ErrInvalidDate},
		} {
			s.Run(tc.name, func() {
				s.SetupTest()
				_, err := s.commands.Create(ctx, s.actor, tc.in)
				s.ErrorIs(err, tc.err)
			})
		}
	})
}

func (s *BookingCommandsTestSuite) TestCancel() {
	ctx := context.Background()

	s.Run("success: owner cancels", func() {
		s.SetupTest()
		b := builder.NewBookingBuilder().WithUserID(s.actor.UserID).BuildDomain()
		s.h.ExpectWithin(1)
		s.h.Reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(b, nil)
		s.h.Bookings.EXPECT().Cancel(gomock.Any(), gomock.Any(), b.ID()).Return(true, nil)

		s.Require().NoError(s.commands.Cancel(ctx, s.actor, b.ID()))
	})

	s.Run("success: admin cancels another user's booking", func() {
		s.SetupTest()
		b := builder.NewBookingBuilder().WithUserID("user_someoneelse").BuildDomain()
		s.h.ExpectWithin(1)
		s.h.Reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(b, nil)
		s.h.Bookings.EXPECT().Cancel(gomock.Any(), gomock.Any(), b.ID()).Return(true, nil)

		admin := shared.Actor{UserID: "user_admin", Role: user.RoleAdmin}
		s.Require().NoError(s.commands.Cancel(ctx, admin, b.ID()))
	})

	s.Run("error: not the owner", func() {
		s.SetupTest()
		b := builder.NewBookingBuilder().WithUserID("user_someoneelse").BuildDomain()
		s.h.ExpectWithin(1)
		s.h.Reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(b, nil)

		s.ErrorIs(s.commands.Cancel(ctx, s.actor, b.ID()), errs.ErrForbidden)
	})

	s.Run("error: already cancelled", func() {
		s.SetupTest()
		b := builder.NewBookingBuilder().WithUserID(s.actor.UserID).AsCancelled().BuildDomain()
		s.h.ExpectWithin(1)
		s.h.Reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(b, nil)

		s.ErrorIs(s.commands.Cancel(ctx, s.actor, b.ID()), booking.ErrAlreadyCancelled)
	})

	s.Run("error: lost the race to another cancel", func() {
		s.SetupTest()
		b := builder.NewBookingBuilder().WithUserID(s.actor.UserID).BuildDomain()
		s.h.ExpectWithin(1)
		s.h.Reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(b, nil)
		s.h.Bookings.EXPECT().Cancel(gomock.Any(), gomock.Any(), b.ID()).Return(false, nil)

		s.ErrorIs(s.commands.Cancel(ctx, s.actor, b.ID()), booking.ErrAlreadyCancelled)
	})

	s.Run("error: not found", func() {
		s.SetupTest()
		s.h.ExpectWithin(1)
		s.h.Reads.EXPECT().BookingByID(gomock.Any(), "booking_missing").Return(nil, notFound())

		s.ErrorIs(s.commands.Cancel(ctx, s.actor, "booking_missing"), queries.ErrBookingNotFound)
	})

	s.Run("error: database failure is passed through", func() {
		s.SetupTest()
		dbErr := infra.WrapRepoErr("failed to cancel booking", errors.New("connection reset"))
		b := builder.NewBookingBuilder().WithUserID(s.actor.UserID).BuildDomain()
		s.h.ExpectWithin(1)
		s.h.Reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(b, nil)
		s.h.Bookings.EXPECT().Cancel(gomock.Any(), gomock.Any(), b.ID()).Return(false, dbErr)

		err := s.commands.Cancel(ctx, s.actor, b.ID())
		s.True(infra.IsKind(err, infra.KindDBFailure))
	})
}
