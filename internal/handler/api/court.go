package api

import (
	"net/http"

	reqdto "court-booking/internal/handler/dto/request"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CourtHandler struct {
	cmds commands.CourtCommands
	q    queries.CourtQueries
}

func NewCourtHandler(cmds commands.CourtCommands, q queries.CourtQueries) *CourtHandler {
	return &CourtHandler{cmds: cmds, q: q}
}

// @Summary List courts
// @Description List active courts
// @Tags courts
// @Produce json
// @Success 200 {array} resdto.CourtResponse
// @Router /api/courts [get]
func (h *CourtHandler) List(c *gin.Context) {
	courts, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCourtViews(courts))
}

// @Summary Get court
// @Tags courts
// @Produce json
// @Param id path string true "Court ID"
// @Success 200 {object} resdto.CourtResponse
// @Failure 404 {object} httperr.Response
// @Router /api/courts/{id} [get]
func (h *CourtHandler) Get(c *gin.Context) {
	view, err := h.q.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCourtView(view))
}

// @Summary Create court
// @Description Admin only
// @Tags courts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCourtRequest true "Court"
// @Success 201 {object} resdto.CourtResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/courts [post]
func (h *CourtHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortWithUseCaseError(c, errs.ErrUnauthenticated)
		return
	}
	var req reqdto.CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	created, err := h.cmds.Create(c.Request.Context(), actor, req.ToSpec())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCourt(created))
}
