package bootstrap

import (
	"fmt"
	"log/slog"

	"court-booking/internal/infra/payment/omise"
	"court-booking/internal/infra/payment/stripe"
	"court-booking/internal/pkg/config"
	"court-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		NewPaymentGateway,
	),
)

func NewPaymentGateway(cfg config.Config) (commands.PaymentGateway, error) {
	slog.Info("payment gateway selected", "provider", cfg.Payment.Provider, "currency", cfg.Payment.Currency)
	switch cfg.Payment.Provider {
	case "stripe":
		return stripe.NewGateway(cfg.Payment), nil
	case "omise":
		return omise.NewGateway(cfg.Payment)
	default:
		return nil, fmt.Errorf("unknown PAYMENT_PROVIDER %q", cfg.Payment.Provider)
	}
}
