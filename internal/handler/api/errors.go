package api

import (
	"log/slog"
	"net/http"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/court"
	"court-booking/internal/domain/payment"
	domreview "court-booking/internal/domain/review"
	"court-booking/internal/domain/user"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// validationErrors are reported to the client with their own message.
var validationErrors = []error{
	booking.ErrInvalidSlot,
	booking.ErrInvalidDate,
	booking.ErrInvalidStatus,
	user.ErrInvalidEmail,
	user.ErrPasswordTooWeak,
	user.ErrInvalidName,
	user.ErrInvalidLanguage,
	domreview.ErrInvalidRating,
	domreview.ErrCommentTooLong,
	court.ErrInvalidCategory,
	court.ErrNameRequired,
	commands.ErrMissingReturnOrigin,
}

type errorMapping struct {
	target  error
	status  int
	message string
}

var errorMappings = []errorMapping{
	{errs.ErrSessionExpired, http.StatusUnauthorized, "Session expired"},
	{errs.ErrUnauthenticated, http.StatusUnauthorized, "Not authenticated"},
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
	{errs.ErrForbidden, http.StatusForbidden, "Access denied"},
	{queries.ErrCourtNotFound, http.StatusNotFound, "Court not found"},
	{queries.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{queries.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{commands.ErrTransactionNotFound, http.StatusNotFound, "Transaction not found"},
	{booking.ErrSlotTaken, http.StatusBadRequest, "Time slot not available"},
	{booking.ErrAlreadyCancelled, http.StatusBadRequest, "Booking already cancelled"},
	{payment.ErrAlreadyPaid, http.StatusBadRequest, "Booking already paid"},
	{commands.ErrEmailTaken, http.StatusBadRequest, "Email already registered"},
	{domreview.ErrNotEligible, http.StatusBadRequest, "You can only review courts you have booked"},
	{payment.ErrInvalidSignature, http.StatusBadRequest, "Invalid webhook signature"},
	{errs.ErrUpstream, http.StatusBadGateway, "Upstream service unavailable, please retry"},
}

func abortWithUseCaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	for _, v := range validationErrors {
		if errs.Is(err, v) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, v.Error(), nil)
			return
		}
	}

	slog.Error("unhandled use case error", "path", c.Request.URL.Path, "error", err.Error())
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func abortInvalidRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
}
