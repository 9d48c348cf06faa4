package bootstrap

import (
	"context"
	"log/slog"

	"court-booking/internal/infra/db"
	"court-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the pool eagerly so a bad DSN fails startup instead of the first request.
func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, closePool, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	slog.Info("database connected", "host", cfg.DB.Host, "db", cfg.DB.DBName, "maxConns", cfg.DB.MaxConns)

	lc.Append(fx.StopHook(func(context.Context) error {
		closePool()
		return nil
	}))

	return pool, nil
}
