package middleware

import (
	"log/slog"

	"court-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware builds the CORS policy. Browsers reject a literal "*"
// alongside credentials, so a wildcard origin list echoes the caller's Origin instead.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	switch {
	case cfg.AllowsAnyOrigin() && cfg.AllowCredentials:
		corsCfg.AllowOriginFunc = func(string) bool { return true }
	case cfg.AllowsAnyOrigin():
		corsCfg.AllowAllOrigins = true
	default:
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}

	slog.Info("CORS middleware initialized", "origins", cfg.AllowOrigins, "credentials", cfg.AllowCredentials)
	return cors.New(corsCfg)
}
