package components

import (
	"context"
	"log/slog"
	"sync"

	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/config"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/shared"
	"court-booking/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewOutboxRelay,
		NewSessionJanitor,
	),
	fx.Invoke(
		seedCatalog,
		startWorkers,
	),
)

func NewOutboxRelay(uow shared.UnitOfWork, pub worker.Publisher, clk clock.Clock, cfg config.Config) *worker.OutboxRelay {
	return worker.NewOutboxRelay(uow, pub, clk, cfg.Worker.OutboxInterval, cfg.Worker.OutboxBatchSize)
}

func NewSessionJanitor(sessions commands.SessionCommands, cfg config.Config) *worker.SessionJanitor {
	return worker.NewSessionJanitor(sessions, cfg.Worker.SessionJanitorInterval)
}

func seedCatalog(lc fx.Lifecycle, courts commands.CourtCommands) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			added, err := courts.SeedCatalog(ctx)
			if err != nil {
				return err
			}
			if added > 0 {
				slog.Info("default courts seeded", "count", added)
			}
			return nil
		},
	})
}

func startWorkers(lc fx.Lifecycle, relay *worker.OutboxRelay, janitor *worker.SessionJanitor) {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			wg.Add(2)
			go func() {
				defer wg.Done()
				relay.Start(ctx)
			}()
			go func() {
				defer wg.Done()
				janitor.Start(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
