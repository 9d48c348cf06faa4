package worker

import (
	"context"
	"log/slog"
	"time"

	"court-booking/internal/pkg/clock"
	"court-booking/internal/usecase/shared"
)

//go:generate mockgen -source=outbox_relay.go -destination=../../tests/mock/worker/outbox_relay.go -package=workermock

const (
	MaxOutboxAttempts = 10
	retryBaseDelay    = 10 * time.Second
	retryMaxDelay     = 30 * time.Minute
)

type Publisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

// OutboxRelay forwards committed outbox jobs to the broker. Delivery is
// at-least-once: a job is marked sent only after the broker accepted it.
type OutboxRelay struct {
	uow       shared.UnitOfWork
	publisher Publisher
	clock     clock.Clock
	interval  time.Duration
	batchSize int32
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher Publisher, clk clock.Clock, interval time.Duration, batchSize int32) *OutboxRelay {
	return &OutboxRelay{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		interval:  interval,
		batchSize: batchSize,
	}
}

func (r *OutboxRelay) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	slog.Info("Outbox relay started", "interval", r.interval.String(), "batch_size", r.batchSize)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Outbox relay stopped")
			return
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
				slog.Error("outbox relay batch failed", "error", err.Error())
			}
		}
	}
}

// RunOnce relays one batch and returns the number of jobs published.
func (r *OutboxRelay) RunOnce(ctx context.Context) (int, error) {
	sent := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		now := r.clock.Now()
		msgs, err := tx.Outbox().ClaimPending(ctx, tx.DB(), now, r.batchSize)
		if err != nil {
			return err
		}

		for _, msg := range msgs {
			if pubErr := r.publisher.Publish(ctx, msg.RoutingKey, msg.Payload); pubErr != nil {
				next := now.Add(RetryDelay(msg.Attempts + 1))
				slog.Warn("outbox publish failed",
					"job_id", msg.ID,
					"kind", msg.Kind,
					"attempt", msg.Attempts+1,
					"next_run_at", next,
					"error", pubErr.Error())
				if err := tx.Outbox().MarkRetry(ctx, tx.DB(), msg.ID, pubErr, next, MaxOutboxAttempts); err != nil {
					return err
				}
				continue
			}
			if err := tx.Outbox().MarkSent(ctx, tx.DB(), msg.ID, now); err != nil {
				return err
			}
			sent++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if sent > 0 {
		slog.Info("outbox jobs relayed", "count", sent)
	}
	return sent, nil
}

// RetryDelay doubles per attempt and is capped at retryMaxDelay.
func RetryDelay(attempt int32) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := retryBaseDelay
	for i := int32(1); i < attempt; i++ {
		d *= 2
		if d >= retryMaxDelay {
			return retryMaxDelay
		}
	}
	return d
}
