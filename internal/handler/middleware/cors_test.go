//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/config"
	"court-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCORSRouter(origins []string, credentials bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(config.CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: credentials,
		MaxAge:           time.Hour,
	}))
	r.GET("/api/courts", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		origins     []string
		credentials bool
		origin      string
		wantStatus  int
		wantAllow   string
	}{
		{name: "listed origin is allowed", origins: []string{"https://app.example.com"}, credentials: true, origin: "https://app.example.com", wantStatus: http.StatusOK, wantAllow: "https://app.example.com"},
		{name: "unlisted origin is rejected", origins: []string{"https://app.example.com"}, credentials: true, origin: "https://evil.example.com", wantStatus: http.StatusForbidden},
		{name: "wildcard with credentials echoes the origin", origins: []string{"*"}, credentials: true, origin: "https://any.example.com", wantStatus: http.StatusOK, wantAllow: "https://any.example.com"},
		{name: "wildcard without credentials answers star", origins: []string{"*"}, credentials: false, origin: "https://any.example.com", wantStatus: http.StatusOK, wantAllow: "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newCORSRouter(tt.origins, tt.credentials)

			w := httptest.PerformRawRequest(t, router, http.MethodGet, "/api/courts", nil, map[string]string{"Origin": tt.origin})

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantAllow, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}

	t.Run("preflight is answered without reaching the handler", func(t *testing.T) {
		router := newCORSRouter([]string{"https://app.example.com"}, true)

		w := httptest.PerformRawRequest(t, router, http.MethodOptions, "/api/courts", nil, map[string]string{
			"Origin":                        "https://app.example.com",
			"Access-Control-Request-Method": http.MethodPost,
		})

		assert.Equal(t, http.StatusNoContent, w.Code)
		httptest.AssertHeaders(t, w, map[string]string{
			"Access-Control-Allow-Origin":      "https://app.example.com",
			"Access-Control-Allow-Credentials": "true",
		})
	})
}
