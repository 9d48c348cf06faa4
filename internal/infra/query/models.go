package query

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type User struct {
	UserID       string
	Email        string
	Phone        string
	Name         string
	Picture      pgtype.Text
	Language     string
	Role         string
	PasswordHash pgtype.Text
	CreatedAt    pgtype.Timestamptz
}

type UserSession struct {
	SessionToken string
	UserID       string
	ExpiresAt    pgtype.Timestamptz
	CreatedAt    pgtype.Timestamptz
}

type Court struct {
	CourtID       string
	NameAr        string
	NameEn        string
	Type          string
	DescriptionAr string
	DescriptionEn string
	ImageUrl      pgtype.Text
	IsActive      bool
	CreatedAt     pgtype.Timestamptz
}

type Booking struct {
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

type PaymentTransaction struct {
	TransactionID string
	BookingID     string
	UserID        string
	SessionID     string
	AmountMinor   int64
	Currency      string
	PaymentStatus string
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type Review struct {
	ReviewID  string
	UserID    string
	UserName  string
	CourtID   string
	Rating    int32
	Comment   string
	CreatedAt pgtype.Timestamptz
}

type OutboxJob struct {
	JobID      string
	Kind       string
	RoutingKey string
	Payload    []byte
	Status     string
	Attempts   int32
	LastError  pgtype.Text
	RunAt      pgtype.Timestamptz
	CreatedAt  pgtype.Timestamptz
	SentAt     pgtype.Timestamptz
}
