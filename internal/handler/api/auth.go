package api

import (
	"net/http"

	reqdto "court-booking/internal/handler/dto/request"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/cookie"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth      commands.AuthCommands
	users     queries.UserQueries
	cookieCfg config.CookieConfig
}

func NewAuthHandler(auth commands.AuthCommands, users queries.UserQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		auth:      auth,
		users:     users,
		cookieCfg: cfg.Cookie,
	}
}

// @Summary Register
// @Description Create a password account and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	result, err := h.auth.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	h.respondWithSession(c, result)
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	h.respondWithSession(c, result)
}

// @Summary External login callback
// @Description Exchange an identity provider session id for a local session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.ExternalLoginRequest true "Provider session"
// @Success 200 {object} resdto.AuthResponse
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/auth/google/callback [post]
func (h *AuthHandler) ExternalCallback(c *gin.Context) {
	var req reqdto.ExternalLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	result, err := h.auth.ExchangeExternalSession(c.Request.Context(), req.SessionID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	h.respondWithSession(c, result)
}

// @Summary Get current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortWithUseCaseError(c, errs.ErrUnauthenticated)
		return
	}

	view, err := h.users.GetCurrentUser(c.Request.Context(), actor.UserID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary Logout
// @Description Revoke the session if it is stateful and clear the cookie
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.MessageResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), middleware.ExtractToken(c)); err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	cookie.ClearSessionCookie(c, h.cookieCfg)
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Logged out successfully"})
}

func (h *AuthHandler) respondWithSession(c *gin.Context, result *commands.AuthResult) {
	cookie.SetSessionCookie(c, h.cookieCfg, result.Token, result.ExpiresIn)
	c.JSON(http.StatusOK, resdto.AuthResponse{
		User:  resdto.FromUser(result.User),
		Token: result.Token,
	})
}
