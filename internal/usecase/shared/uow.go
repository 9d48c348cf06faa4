package shared

import (
	"context"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/court"
	"court-booking/internal/domain/payment"
	"court-booking/internal/domain/review"
	"court-booking/internal/domain/session"
	"court-booking/internal/domain/user"
	"court-booking/internal/infra/query"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Sessions() SessionRepository
	Courts() CourtRepository
	Bookings() BookingRepository
	Payments() PaymentRepository
	Reviews() ReviewRepository
	Outbox() OutboxRepository
	Reads() CommandReads
	DB() query.DBTX
}

// CommandReads are the lookups the write side needs before it decides anything.
type CommandReads interface {
	UserByID(ctx context.Context, id string) (*user.User, error)
	UserByEmail(ctx context.Context, email string) (*user.User, error)
	SessionByToken(ctx context.Context, token string) (*session.Session, error)
	CourtByID(ctx context.Context, id string) (*court.Court, error)
	BookingByID(ctx context.Context, id string) (*booking.Booking, error)
	TransactionBySessionID(ctx context.Context, sessionID string) (*payment.Transaction, error)
	HasPaidBookingForCourt(ctx context.Context, userID, courtID string) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx query.DBTX, u *user.User) error
	UpdateProfile(ctx context.Context, tx query.DBTX, userID, name string, picture *string) error
}

type SessionRepository interface {
	Create(ctx context.Context, tx query.DBTX, s *session.Session) error
	Delete(ctx context.Context, tx query.DBTX, token string) (bool, error)
	DeleteExpired(ctx context.Context, tx query.DBTX, now time.Time) (int64, error)
}

type CourtRepository interface {
	// Create reports false when a court with the same id already exists.
	Create(ctx context.Context, tx query.DBTX, c *court.Court) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx query.DBTX, b *booking.Booking) error
	OccupiedSlots(ctx context.Context, tx query.DBTX, courtID string, date booking.Date) (map[booking.Slot]struct{}, error)
	Cancel(ctx context.Context, tx query.DBTX, bookingID string) (bool, error)
	// ConfirmPayment reports applied=false when the booking was already paid.
	ConfirmPayment(ctx context.Context, tx query.DBTX, bookingID string) (status booking.Status, applied bool, err error)
}

type PaymentRepository interface {
	Create(ctx context.Context, tx query.DBTX, t *payment.Transaction) error
	// MarkPaid is a compare-and-set; transitioned is false when the transaction was already paid.
	MarkPaid(ctx context.Context, tx query.DBTX, sessionID string, now time.Time) (bookingID string, transitioned bool, err error)
	MarkFailed(ctx context.Context, tx query.DBTX, sessionID string, now time.Time) (bool, error)
	FailSiblings(ctx context.Context, tx query.DBTX, bookingID, paidSessionID string, now time.Time) (int64, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, tx query.DBTX, r *review.Review) error
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, tx query.DBTX, msg OutboxMessage) error
	ClaimPending(ctx context.Context, tx query.DBTX, now time.Time, limit int32) ([]OutboxMessage, error)
	MarkSent(ctx context.Context, tx query.DBTX, id string, now time.Time) error
	MarkRetry(ctx context.Context, tx query.DBTX, id string, cause error, runAt time.Time, maxAttempts int32) error
}
