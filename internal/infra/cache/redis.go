package cache

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// Connect returns nil when no address is configured.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, func(), error) {
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, func() {}, nil
	}

	var opts *redis.Options
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, nil, errs.Wrap(err, "failed to parse redis url")
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr, Password: cfg.Password, DB: cfg.DB}
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, errs.Wrap(err, "failed to ping redis")
	}

	cleanup := func() {
		slog.Info("Closing redis client")
		if err := client.Close(); err != nil {
			slog.Warn("redis close failed", "error", err.Error())
		}
	}
	return client, cleanup, nil
}
