package bootstrap

import (
	"log/slog"

	"court-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logConfigSummary),
)

// logConfigSummary records which optional integrations are active; secrets are never logged.
func logConfigSummary(cfg config.Config) {
	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"paymentProvider", cfg.Payment.Provider,
		"currency", cfg.Payment.Currency,
		"catalogCache", cfg.Redis.Addr != "",
		"broker", cfg.Broker.URL != "",
	)
}
