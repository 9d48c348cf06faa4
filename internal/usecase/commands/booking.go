package commands

import (
	"context"
	"log/slog"

	"court-booking/internal/domain/booking"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/queries"
	"court-booking/internal/usecase/shared"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

type CreateBookingInput struct {
	CourtID  string
	Date     string
	TimeSlot string
}

type BookingCommands interface {
	Create(ctx context.Context, actor shared.Actor, in CreateBookingInput) (*booking.Booking, error)
	Cancel(ctx context.Context, actor shared.Actor, bookingID string) error
}

type bookingCommandsImpl struct {
	uow     shared.UnitOfWork
	pricing booking.PriceCalculator
	clock   clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, pricing booking.PriceCalculator, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:     uow,
		pricing: pricing,
		clock:   clk,
	}
}

// Create relies on the live-slot unique index; the occupancy pre-check only
// avoids a doomed insert.
func (c *bookingCommandsImpl) Create(ctx context.Context, actor shared.Actor, in CreateBookingInput) (*booking.Booking, error) {
	date, err := booking.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	slot, err := booking.ParseSlot(in.TimeSlot)
	if err != nil {
		return nil, err
	}

	var created *booking.Booking
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ct, derr := tx.Reads().CourtByID(ctx, in.CourtID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return queries.ErrCourtNotFound
			}
			return derr
		}
		if !ct.IsActive() {
			return queries.ErrCourtNotFound
		}

		occupied, derr := tx.Bookings().OccupiedSlots(ctx, tx.DB(), ct.ID(), date)
		if derr != nil {
			return derr
		}
		if _, taken := occupied[slot]; taken {
			return booking.ErrSlotTaken
		}

		b, derr := booking.NewBooking(c.pricing, booking.Request{
			UserID:  actor.UserID,
			CourtID: ct.ID(),
			Date:    date,
			Slot:    slot,
		}, c.clock.Now())
		if derr != nil {
			return derr
		}

		if derr = tx.Bookings().Create(ctx, tx.DB(), b); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return booking.ErrSlotTaken
			}
			return derr
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("booking created",
		"booking_id", created.ID(),
		"court_id", created.CourtID(),
		"date", created.Date().String(),
		"time_slot", created.Slot().String())
	return created, nil
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, actor shared.Actor, bookingID string) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return queries.ErrBookingNotFound
			}
			return err
		}
		if !actor.CanAccess(b.UserID()) {
			return errs.ErrForbidden
		}
		if err := b.Cancel(); err != nil {
			return err
		}

		cancelled, err := tx.Bookings().Cancel(ctx, tx.DB(), b.ID())
		if err != nil {
			return err
		}
		if !cancelled {
			return booking.ErrAlreadyCancelled
		}
		return nil
	})
}
