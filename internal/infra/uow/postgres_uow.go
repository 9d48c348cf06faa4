package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/court"
	"court-booking/internal/domain/payment"
	"court-booking/internal/domain/session"
	"court-booking/internal/domain/user"
	"court-booking/internal/infra/query"
	"court-booking/internal/infra/repository"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *query.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *query.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.q, u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx query.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	userRepo     *repository.UserRepository
	sessionRepo  *repository.SessionRepository
	courtRepo    *repository.CourtRepository
	bookingRepo  *repository.BookingRepository
	paymentRepo  *repository.PaymentRepository
	reviewRepo   *repository.ReviewRepository
	outboxRepo   *repository.OutboxRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() query.DBTX {
	return t.dbtx
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q)
	}
	return t.userRepo
}

func (t *pgTx) Sessions() shared.SessionRepository {
	if t.sessionRepo == nil {
		t.sessionRepo = repository.NewSessionRepository(t.uow.q)
	}
	return t.sessionRepo
}

func (t *pgTx) Courts() shared.CourtRepository {
	if t.courtRepo == nil {
		t.courtRepo = repository.NewCourtRepository(t.uow.q)
	}
	return t.courtRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q)
	}
	return t.bookingRepo
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.paymentRepo == nil {
		t.paymentRepo = repository.NewPaymentRepository(t.uow.q)
	}
	return t.paymentRepo
}

func (t *pgTx) Reviews() shared.ReviewRepository {
	if t.reviewRepo == nil {
		t.reviewRepo = repository.NewReviewRepository(t.uow.q)
	}
	return t.reviewRepo
}

func (t *pgTx) Outbox() shared.OutboxRepository {
	if t.outboxRepo == nil {
		t.outboxRepo = repository.NewOutboxRepository(t.uow.q)
	}
	return t.outboxRepo
}

// Reads inside a transaction see the transaction's own writes.
func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.uow.q, t.dbtx)
	}
	return t.commandReads
}

type commandReads struct {
	dbtx query.DBTX

	users    *repository.UserRepository
	sessions *repository.SessionRepository
	courts   *repository.CourtRepository
	bookings *repository.BookingRepository
	payments *repository.PaymentRepository
}

func newCommandReads(q *query.Queries, dbtx query.DBTX) *commandReads {
	return &commandReads{
		dbtx:     dbtx,
		users:    repository.NewUserRepository(q),
		sessions: repository.NewSessionRepository(q),
		courts:   repository.NewCourtRepository(q),
		bookings: repository.NewBookingRepository(q),
		payments: repository.NewPaymentRepository(q),
	}
}

func (r *commandReads) UserByID(ctx context.Context, id string) (*user.User, error) {
	return r.users.FindByID(ctx, r.dbtx, id)
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.users.FindByEmail(ctx, r.dbtx, email)
}

func (r *commandReads) SessionByToken(ctx context.Context, token string) (*session.Session, error) {
	return r.sessions.FindByToken(ctx, r.dbtx, token)
}

func (r *commandReads) CourtByID(ctx context.Context, id string) (*court.Court, error) {
	return r.courts.FindByID(ctx, r.dbtx, id)
}

func (r *commandReads) BookingByID(ctx context.Context, id string) (*booking.Booking, error) {
	return r.bookings.FindByID(ctx, r.dbtx, id)
}

func (r *commandReads) TransactionBySessionID(ctx context.Context, sessionID string) (*payment.Transaction, error) {
	return r.payments.FindBySessionID(ctx, r.dbtx, sessionID)
}

func (r *commandReads) HasPaidBookingForCourt(ctx context.Context, userID, courtID string) (bool, error) {
	return r.bookings.HasPaidBookingForCourt(ctx, r.dbtx, userID, courtID)
}
