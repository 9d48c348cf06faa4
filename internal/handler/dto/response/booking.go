package response

import (
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID            string    `json:"booking_id"`
	UserID        string    `json:"user_id"`
	CourtID       string    `json:"court_id"`
	Date          string    `json:"date"`
	TimeSlot      string    `json:"time_slot"`
	Duration      int32     `json:"duration"`
	Price         float64   `json:"price"`
	PriceMinor    int64     `json:"price_minor"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID(),
		UserID:        b.UserID(),
		CourtID:       b.CourtID(),
		Date:          b.Date().String(),
		TimeSlot:      b.Slot().String(),
		Duration:      int32(b.Duration().Minutes()),
		Price:         b.Price().Major(),
		PriceMinor:    b.Price().Minor(),
		Status:        b.Status().String(),
		PaymentStatus: b.PaymentStatus().String(),
		CreatedAt:     b.CreatedAt(),
	}
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	res := &BookingResponse{}
	_ = copier.Copy(res, v)
	res.Price = float64(v.PriceMinor) / 100.0
	return res
}

func FromBookingViews(vs []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, 0, len(vs))
	for _, v := range vs {
		res = append(res, FromBookingView(v))
	}
	return res
}

type SlotResponse struct {
	TimeSlot    string  `json:"time_slot"`
	Price       float64 `json:"price"`
	PriceMinor  int64   `json:"price_minor"`
	IsAvailable bool    `json:"is_available"`
}

type AvailabilityResponse struct {
	CourtID string          `json:"court_id"`
	Date    string          `json:"date"`
	Slots   []*SlotResponse `json:"slots"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	res := &AvailabilityResponse{
		CourtID: v.CourtID,
		Date:    v.Date,
		Slots:   make([]*SlotResponse, 0, len(v.Slots)),
	}
	for i := range v.Slots {
		slot := &SlotResponse{}
		_ = copier.Copy(slot, &v.Slots[i])
		res.Slots = append(res.Slots, slot)
	}
	return res
}
