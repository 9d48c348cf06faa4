package components

import (
	"court-booking/internal/handler"
	"court-booking/internal/handler/api"
	"court-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCourtHandler,
		api.NewBookingHandler,
		api.NewPaymentHandler,
		api.NewWebhookHandler,
		api.NewReviewHandler,
		api.NewAdminHandler,
		api.NewHealthHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
