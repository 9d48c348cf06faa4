package queries

import (
	"time"

	"court-booking/internal/pkg/errs"
)

// MaxListSize caps player-facing list endpoints; admin listings use MaxAdminListSize.
const (
	MaxListSize      = 100
	MaxAdminListSize = 1000
)

var (
	ErrCourtNotFound   = errs.New("court not found")
	ErrBookingNotFound = errs.New("booking not found")
	ErrUserNotFound    = errs.New("user not found")
)

type CourtView struct {
	ID            string    `json:"court_id"`
	NameAr        string    `json:"name_ar"`
	NameEn        string    `json:"name_en"`
	Type          string    `json:"type"`
	DescriptionAr string    `json:"description_ar"`
	DescriptionEn string    `json:"description_en"`
	ImageURL      *string   `json:"image_url,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

type BookingView struct {
	ID            string    `json:"booking_id"`
	UserID        string    `json:"user_id"`
	CourtID       string    `json:"court_id"`
	Date          string    `json:"date"`
	TimeSlot      string    `json:"time_slot"`
	Duration      int32     `json:"duration"`
	PriceMinor    int64     `json:"price_minor"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}

type ReviewView struct {
	ID        string    `json:"review_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	CourtID   string    `json:"court_id"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// UserView never carries the password hash.
type UserView struct {
	ID        string    `json:"user_id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	Picture   *string   `json:"picture,omitempty"`
	Language  string    `json:"language"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type SlotView struct {
	TimeSlot    string  `json:"time_slot"`
	Price       float64 `json:"price"`
	PriceMinor  int64   `json:"price_minor"`
	IsAvailable bool    `json:"is_available"`
}

type AvailabilityView struct {
	CourtID string     `json:"court_id"`
	Date    string     `json:"date"`
	Slots   []SlotView `json:"slots"`
}

type StatsView struct {
	TotalBookings     int64 `json:"total_bookings"`
	TotalUsers        int64 `json:"total_users"`
	TotalRevenueMinor int64 `json:"total_revenue_minor"`
}
