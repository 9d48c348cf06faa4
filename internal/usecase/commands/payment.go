package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/payment"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/queries"
	"court-booking/internal/usecase/shared"
)

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/commands/payment.go -package=commandsmock

var (
	ErrTransactionNotFound = errs.New("payment transaction not found")
	ErrMissingReturnOrigin = errs.New("return origin is required")
)

type CheckoutInput struct {
	BookingID    string
	ReturnOrigin string
}

type CheckoutResult struct {
	URL       string
	SessionID string
}

// PaymentStatus is the processor's view of a session after it was applied locally.
type PaymentStatus struct {
	SessionID     string
	Status        string
	PaymentStatus string
	AmountTotal   int64
	Currency      string
}

type PaymentCommands interface {
	InitiateCheckout(ctx context.Context, actor shared.Actor, in CheckoutInput) (*CheckoutResult, error)
	// Reconcile is the poll trigger. It is safe to call any number of times.
	Reconcile(ctx context.Context, actor shared.Actor, sessionID string) (*PaymentStatus, error)
	// HandleWebhook is the push trigger; it converges on the same state as Reconcile.
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type paymentCommandsImpl struct {
	uow      shared.UnitOfWork
	gateway  PaymentGateway
	clock    clock.Clock
	currency string
	timeout  time.Duration
}

func NewPaymentCommands(uow shared.UnitOfWork, gateway PaymentGateway, clk clock.Clock, currency string, timeout time.Duration) PaymentCommands {
	return &paymentCommandsImpl{
		uow:      uow,
		gateway:  gateway,
		clock:    clk,
		currency: strings.ToLower(currency),
		timeout:  timeout,
	}
}

func (c *paymentCommandsImpl) InitiateCheckout(ctx context.Context, actor shared.Actor, in CheckoutInput) (*CheckoutResult, error) {
	origin := strings.TrimRight(strings.TrimSpace(in.ReturnOrigin), "/")
	if origin == "" {
		return nil, ErrMissingReturnOrigin
	}

	b, err := c.uow.CommandReads().BookingByID(ctx, in.BookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, queries.ErrBookingNotFound
		}
		return nil, err
	}
	if !b.IsOwnedBy(actor.UserID) {
		return nil, errs.ErrForbidden
	}
	if b.IsPaid() {
		return nil, payment.ErrAlreadyPaid
	}
	if b.IsCancelled() {
		return nil, booking.ErrAlreadyCancelled
	}

	gctx, cancel := c.withTimeout(ctx)
	defer cancel()
	sess, err := c.gateway.CreateCheckout(gctx, CheckoutRequest{
		BookingID:    b.ID(),
		UserID:       b.UserID(),
		Description:  fmt.Sprintf("Court booking %s %s", b.Date().String(), b.Slot().String()),
		AmountMinor:  b.Price().Minor(),
		Currency:     c.currency,
		ReturnOrigin: origin,
	})
	if err != nil {
		slog.Warn("checkout session creation failed", "booking_id", b.ID(), "error", err.Error())
		return nil, err
	}

	txn, err := payment.NewTransaction(payment.Checkout{
		BookingID:   b.ID(),
		UserID:      b.UserID(),
		SessionID:   sess.SessionID,
		AmountMinor: b.Price().Minor(),
		Currency:    c.currency,
	}, c.clock.Now())
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Payments().Create(ctx, tx.DB(), txn)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("checkout session created", "booking_id", b.ID(), "session_id", sess.SessionID)
	return &CheckoutResult{URL: sess.RedirectURL, SessionID: sess.SessionID}, nil
}

func (c *paymentCommandsImpl) Reconcile(ctx context.Context, actor shared.Actor, sessionID string) (*PaymentStatus, error) {
	txn, err := c.findTransaction(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(txn.UserID()) {
		return nil, errs.ErrForbidden
	}

	gctx, cancel := c.withTimeout(ctx)
	defer cancel()
	report, err := c.gateway.FetchStatus(gctx, sessionID)
	if err != nil {
		slog.Warn("payment status poll failed", "session_id", sessionID, "error", err.Error())
		return nil, err
	}
	report.SessionID = sessionID

	if err := c.apply(ctx, report); err != nil {
		return nil, err
	}

	currency := report.Currency
	if currency == "" {
		currency = txn.Currency()
	}
	return &PaymentStatus{
		SessionID:     sessionID,
		Status:        report.SessionStatus,
		PaymentStatus: string(report.Outcome),
		AmountTotal:   report.AmountTotal,
		Currency:      currency,
	}, nil
}

func (c *paymentCommandsImpl) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	report, err := c.gateway.ParseWebhook(ctx, payload, signature)
	if err != nil {
		slog.Warn("webhook rejected", "error", err.Error())
		return err
	}
	if report == nil {
		return nil
	}

	// Unknown sessions are acknowledged so the processor stops redelivering them.
	if _, err := c.findTransaction(ctx, report.SessionID); err != nil {
		if errs.Is(err, ErrTransactionNotFound) {
			slog.Warn("webhook for unknown payment session ignored", "session_id", report.SessionID)
			return nil
		}
		return err
	}
	return c.apply(ctx, report)
}

// apply runs the whole transition in one database transaction. Every write
// is conditional, so concurrent or repeated reports leave one effect.
func (c *paymentCommandsImpl) apply(ctx context.Context, report *payment.Report) error {
	now := c.clock.Now()
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		txn, err := tx.Reads().TransactionBySessionID(ctx, report.SessionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTransactionNotFound
			}
			return err
		}

		transition, err := payment.Decide(txn.Status(), report.Outcome)
		if err != nil {
			return err
		}

		switch transition {
		case payment.TransitionMarkPaid:
			return c.markPaid(ctx, tx, txn, now)
		case payment.TransitionMarkFailed:
			failed, ferr := tx.Payments().MarkFailed(ctx, tx.DB(), txn.SessionID(), now)
			if ferr != nil {
				return ferr
			}
			if failed {
				slog.Info("payment transaction expired", "session_id", txn.SessionID(), "booking_id", txn.BookingID())
			}
			return nil
		default:
			return nil
		}
	})
}

func (c *paymentCommandsImpl) markPaid(ctx context.Context, tx shared.Tx, txn *payment.Transaction, now time.Time) error {
	bookingID, transitioned, err := tx.Payments().MarkPaid(ctx, tx.DB(), txn.SessionID(), now)
	if err != nil {
		return err
	}
	if !transitioned {
		return nil
	}

	status, applied, err := tx.Bookings().ConfirmPayment(ctx, tx.DB(), bookingID)
	if err != nil {
		return err
	}
	if !applied {
		slog.Warn("booking already paid by another transaction", "booking_id", bookingID, "session_id", txn.SessionID())
		return nil
	}

	invalidated, err := tx.Payments().FailSiblings(ctx, tx.DB(), bookingID, txn.SessionID(), now)
	if err != nil {
		return err
	}

	b, err := tx.Reads().BookingByID(ctx, bookingID)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(shared.BookingConfirmedEvent{
		BookingID:   b.ID(),
		UserID:      b.UserID(),
		CourtID:     b.CourtID(),
		Date:        b.Date().String(),
		TimeSlot:    b.Slot().String(),
		AmountMinor: txn.Amount(),
		Currency:    txn.Currency(),
		SessionID:   txn.SessionID(),
		ConfirmedAt: now,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode booking confirmed event")
	}
	kind := shared.KindBookingConfirmed
	if status != booking.StatusConfirmed {
		kind = shared.KindBookingPaidAfterCancel
		slog.Warn("payment settled for a cancelled booking", "booking_id", bookingID, "session_id", txn.SessionID())
	}
	if err := tx.Outbox().Enqueue(ctx, tx.DB(), shared.OutboxMessage{
		Kind:       kind,
		RoutingKey: kind,
		Payload:    payload,
		RunAt:      now,
	}); err != nil {
		return err
	}

	slog.Info("booking payment recorded",
		"booking_status", status,
		"booking_id", bookingID,
		"session_id", txn.SessionID(),
		"invalidated_transactions", invalidated)
	return nil
}

func (c *paymentCommandsImpl) findTransaction(ctx context.Context, sessionID string) (*payment.Transaction, error) {
	if sessionID == "" {
		return nil, ErrTransactionNotFound
	}
	txn, err := c.uow.CommandReads().TransactionBySessionID(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return txn, nil
}

func (c *paymentCommandsImpl) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}
