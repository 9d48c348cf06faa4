package queries

import (
	"context"

	"court-booking/internal/domain/booking"
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock

type SlotReadStore interface {
	OccupiedSlots(ctx context.Context, courtID string, date booking.Date) (map[booking.Slot]struct{}, error)
}

type AvailabilityQueries interface {
	// ForDate always returns every canonical slot; court existence is not checked.
	ForDate(ctx context.Context, courtID, date string) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	readStore SlotReadStore
	pricing   booking.PriceCalculator
}

func NewAvailabilityQueries(readStore SlotReadStore, pricing booking.PriceCalculator) AvailabilityQueries {
	return &availabilityQueriesImpl{
		readStore: readStore,
		pricing:   pricing,
	}
}

func (q *availabilityQueriesImpl) ForDate(ctx context.Context, courtID, date string) (*AvailabilityView, error) {
	day, err := booking.ParseDate(date)
	if err != nil {
		return nil, err
	}

	occupied, err := q.readStore.OccupiedSlots(ctx, courtID, day)
	if err != nil {
		return nil, err
	}

	slots := booking.Availability(q.pricing, occupied)
	view := &AvailabilityView{
		CourtID: courtID,
		Date:    day.String(),
		Slots:   make([]SlotView, 0, len(slots)),
	}
	for _, s := range slots {
		view.Slots = append(view.Slots, SlotView{
			TimeSlot:    s.Slot.String(),
			Price:       s.Price.Major(),
			PriceMinor:  s.Price.Minor(),
			IsAvailable: s.IsAvailable,
		})
	}
	return view, nil
}
