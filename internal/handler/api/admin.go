package api

import (
	"net/http"

	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	q queries.AdminQueries
}

func NewAdminHandler(q queries.AdminQueries) *AdminHandler {
	return &AdminHandler{q: q}
}

// @Summary List bookings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, confirmed or cancelled"
// @Success 200 {array} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Router /api/admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortWithUseCaseError(c, errs.ErrUnauthenticated)
		return
	}

	views, err := h.q.ListBookings(c.Request.Context(), actor, c.Query("status"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.UserResponse
// @Failure 403 {object} httperr.Response
// @Router /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortWithUseCaseError(c, errs.ErrUnauthenticated)
		return
	}

	views, err := h.q.ListUsers(c.Request.Context(), actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserViews(views))
}

// @Summary Platform stats
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.StatsResponse
// @Failure 403 {object} httperr.Response
// @Router /api/admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortWithUseCaseError(c, errs.ErrUnauthenticated)
		return
	}

	stats, err := h.q.Stats(c.Request.Context(), actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatsView(stats))
}
