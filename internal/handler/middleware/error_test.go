//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"court-booking/internal/handler/httperr"
	"court-booking/internal/handler/middleware"
	"court-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())

	r.GET("/deferred", func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusConflict}
		resp.Error.Message = "Time slot not available"
		_ = c.Error(&gin.Error{Err: errors.New("slot taken"), Type: gin.ErrorTypePublic, Meta: resp})
	})
	r.GET("/private", func(c *gin.Context) {
		_ = c.Error(errors.New("connection reset"))
	})
	r.GET("/written", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusNotFound, errors.New("missing"), "Court not found", nil)
	})
	r.GET("/panic", func(*gin.Context) {
		panic("nil map write")
	})
	r.GET("/empty", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestErrorHandler(t *testing.T) {
	router := newErrorRouter()

	tests := []struct {
		name    string
		path    string
		status  int
		message string
	}{
		{name: "public error recorded without a body is rendered", path: "/deferred", status: http.StatusConflict, message: "Time slot not available"},
		{name: "private error becomes a generic 500", path: "/private", status: http.StatusInternalServerError, message: "Internal server error"},
		{name: "already written response is left alone", path: "/written", status: http.StatusNotFound, message: "Court not found"},
		{name: "panic is recovered", path: "/panic", status: http.StatusInternalServerError, message: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.PerformRequest(t, router, http.MethodGet, tt.path, nil, "")
			httptest.AssertErrorResponse(t, w, tt.status, tt.message)
		})
	}

	t.Run("no errors keeps the handler status", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/empty", nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusNoContent, nil)
	})
}
