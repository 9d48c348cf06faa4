package handler

import (
	"log/slog"
	"net/http"

	"court-booking/internal/domain/user"
	"court-booking/internal/handler/api"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Auth    *api.AuthHandler
	Court   *api.CourtHandler
	Booking *api.BookingHandler
	Payment *api.PaymentHandler
	Webhook *api.WebhookHandler
	Review  *api.ReviewHandler
	Admin   *api.AdminHandler
	Health  *api.HealthHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", h.Health.Check)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	requireAdmin := authMiddleware.RequireRole(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/google/callback", Handler: h.Auth.ExternalCallback},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
		})

		courts := apiGroup.Group("/courts")
		addRoutes(courts, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Court.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Court.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Court.Create, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
		})

		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: h.Booking.Availability},
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/my", Handler: h.Booking.ListMine, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPatch, Path: "/:id/cancel", Handler: h.Booking.Cancel, Mw: []gin.HandlerFunc{requireAuth}},
		})

		payments := apiGroup.Group("/payments")
		payments.Use(requireAuth)
		addRoutes(payments, []route{
			{Method: http.MethodPost, Path: "/checkout", Handler: h.Payment.Checkout},
			{Method: http.MethodGet, Path: "/status/:session_id", Handler: h.Payment.Status},
		})

		addRoutes(apiGroup.Group("/webhook"), []route{
			{Method: http.MethodPost, Path: "/payment", Handler: h.Webhook.Payment},
			{Method: http.MethodPost, Path: "/stripe", Handler: h.Webhook.Payment},
		})

		reviews := apiGroup.Group("/reviews")
		addRoutes(reviews, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Review.Create, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/:court_id", Handler: h.Review.ListByCourt},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(requireAuth, requireAdmin)
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/bookings", Handler: h.Admin.ListBookings},
			{Method: http.MethodGet, Path: "/users", Handler: h.Admin.ListUsers},
			{Method: http.MethodGet, Path: "/stats", Handler: h.Admin.Stats},
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
