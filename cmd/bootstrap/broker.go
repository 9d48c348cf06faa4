package bootstrap

import (
	"context"

	"court-booking/internal/infra/broker"
	"court-booking/internal/pkg/config"
	"court-booking/internal/worker"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewPublisher,
	),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config) (worker.Publisher, error) {
	pub, err := broker.NewPublisher(cfg.Broker)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}
