//go:build unit || e2e

package builder

import (
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/court"
	"court-booking/internal/domain/payment"
	reqdto "court-booking/internal/handler/dto/request"
	"court-booking/internal/infra/query"
	"court-booking/internal/pkg/ident"
	"court-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID            string
	UserID        string
	CourtID       string
	Date          string
	TimeSlot      string
	PriceMinor    int64
	Status        string
	PaymentStatus string
	Now           time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:            ident.New(ident.PrefixBooking),
		UserID:        "user_0123456789ab",
		CourtID:       court.SeedPadelID,
		Date:          "2025-03-01",
		TimeSlot:      "10:00",
		PriceMinor:    10000,
		Status:        "pending",
		PaymentStatus: "pending",
		Now:           time.Date(2025, 2, 20, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// BuildDomain reconstructs without validation so tests can fabricate any state.
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	date, _ := booking.ParseDate(b.Date)
	slot, _ := booking.ParseSlot(b.TimeSlot)
	price, _ := booking.NewMoney(b.PriceMinor)
	return booking.ReconstructBooking(
		b.ID, b.UserID, b.CourtID, date, slot, price,
		booking.Status(b.Status), payment.Status(b.PaymentStatus), b.Now,
	)
}

func (b *BookingBuilder) BuildRequest() booking.Request {
	date, _ := booking.ParseDate(b.Date)
	slot, _ := booking.ParseSlot(b.TimeSlot)
	return booking.Request{UserID: b.UserID, CourtID: b.CourtID, Date: date, Slot: slot}
}

func (b *BookingBuilder) BuildInfra() query.Booking {
	date, _ := time.Parse(booking.DateLayout, b.Date)
	return query.Booking{
		BookingID:     b.ID,
		UserID:        b.UserID,
		CourtID:       b.CourtID,
		BookingDate:   pgtype.Date{Time: date, Valid: true},
		TimeSlot:      b.TimeSlot,
		Duration:      60,
		PriceMinor:    b.PriceMinor,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		CreatedAt:     pgtype.Timestamptz{Time: b.Now, Valid: true},
	}
}

func (b *BookingBuilder) BuildReadModel() *queries.BookingView {
	return &queries.BookingView{
		ID:            b.ID,
		UserID:        b.UserID,
		CourtID:       b.CourtID,
		Date:          b.Date,
		TimeSlot:      b.TimeSlot,
		Duration:      60,
		PriceMinor:    b.PriceMinor,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		CreatedAt:     b.Now,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CourtID:  b.CourtID,
		Date:     b.Date,
		TimeSlot: b.TimeSlot,
	}
}

func (b *BookingBuilder) WithID(id string) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithUserID(userID string) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithCourtID(courtID string) *BookingBuilder {
	b.CourtID = courtID
	return b
}

func (b *BookingBuilder) WithSlot(date, timeSlot string) *BookingBuilder {
	b.Date = date
	b.TimeSlot = timeSlot
	return b
}

func (b *BookingBuilder) AsConfirmedPaid() *BookingBuilder {
	b.Status = "confirmed"
	b.PaymentStatus = "paid"
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = "cancelled"
	return b
}
