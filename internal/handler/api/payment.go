package api

import (
	"net/http"

	reqdto "court-booking/internal/handler/dto/request"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
}

func NewPaymentHandler(cmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Start checkout
// @Description Creates a hosted checkout session for an unpaid booking
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckoutRequest true "Checkout"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/payments/checkout [post]
func (h *PaymentHandler) Checkout(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortWithUseCaseError(c, errs.ErrUnauthenticated)
		return
	}
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	result, err := h.cmds.InitiateCheckout(c.Request.Context(), actor, req.ToInput(c.GetHeader("Origin")))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}

// @Summary Payment status
// @Description Polls the processor and applies the result locally
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "Checkout session ID"
// @Success 200 {object} resdto.PaymentStatusResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/payments/status/{session_id} [get]
func (h *PaymentHandler) Status(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortWithUseCaseError(c, errs.ErrUnauthenticated)
		return
	}

	status, err := h.cmds.Reconcile(c.Request.Context(), actor, c.Param("session_id"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentStatus(status))
}
