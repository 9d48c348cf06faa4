package api

import (
	"context"
	"net/http"
	"time"

	"court-booking/internal/handler/httperr"
	"court-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	health queries.HealthQueries
}

func NewHealthHandler(health queries.HealthQueries) *HealthHandler {
	return &HealthHandler{health: health}
}

// @Summary Health check
// @Description Check if the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} httperr.Response
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.health.Check(ctx); err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Database unavailable", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}
