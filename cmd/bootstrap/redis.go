package bootstrap

import (
	"context"
	"log/slog"

	"court-booking/internal/infra/cache"
	"court-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
	),
)

// NewRedis returns a nil client when REDIS_ADDR is empty.
func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, cleanup, err := cache.Connect(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	if client == nil {
		slog.Info("REDIS_ADDR not set, catalog cache disabled")
		return nil, nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return client, nil
}
