package api

import (
	"io"
	"net/http"

	"court-booking/internal/handler/httperr"
	"court-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	signatureHeader = "Stripe-Signature"
	maxWebhookBody  = 1 << 16
)

type WebhookHandler struct {
	payments commands.PaymentCommands
}

func NewWebhookHandler(payments commands.PaymentCommands) *WebhookHandler {
	return &WebhookHandler{payments: payments}
}

// @Summary Payment webhook
// @Description Raw processor event; authenticated by its signature, not by a session
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Router /api/webhook/payment [post]
func (h *WebhookHandler) Payment(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable body", nil)
		return
	}

	if err := h.payments.HandleWebhook(c.Request.Context(), payload, c.GetHeader(signatureHeader)); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
