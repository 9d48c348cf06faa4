package components

import (
	"court-booking/internal/domain/booking"
	"court-booking/internal/infra/identity"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/jwt"
	"court-booking/internal/pkg/password"
	"court-booking/internal/usecase"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"
	"court-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPriceCalculator,
	fx.Annotate(
		password.NewHasher,
		fx.As(new(commands.PasswordHasher)),
	),
	fx.Annotate(
		func(s *jwt.Service) *jwt.Service { return s },
		fx.As(new(commands.TokenIssuer)),
		fx.As(new(usecase.TokenValidator)),
	),
	fx.Annotate(
		func(cfg config.Config) *identity.Client { return identity.NewClient(cfg.Identity) },
		fx.As(new(commands.IdentityProvider)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewAuthCommands,
		commands.NewCourtCommands,
		commands.NewBookingCommands,
		NewPaymentCommands,
		commands.NewReviewUseCase,
		commands.NewSessionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCourtQueries,
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
		queries.NewReviewQueries,
		queries.NewUserQueries,
		queries.NewAdminQueries,
		queries.NewHealthQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewCredentialResolver,
	),
)

func NewPriceCalculator(cfg config.Config) (booking.PriceCalculator, error) {
	return booking.NewHourlyTariff(cfg.Pricing.BaseMinor, cfg.Pricing.PremiumMinor)
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	hasher commands.PasswordHasher,
	tokens commands.TokenIssuer,
	provider commands.IdentityProvider,
	clk clock.Clock,
	cfg config.Config,
) commands.AuthCommands {
	return commands.NewAuthCommands(uow, hasher, tokens, provider, clk, cfg.Identity.SessionTTL)
}

func NewPaymentCommands(uow shared.UnitOfWork, gateway commands.PaymentGateway, clk clock.Clock, cfg config.Config) commands.PaymentCommands {
	return commands.NewPaymentCommands(uow, gateway, clk, cfg.Payment.Currency, cfg.Payment.Timeout)
}
