//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"court-booking/internal/domain/user"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/cookie"
	"court-booking/internal/pkg/errs"
	"court-booking/tests/common/builder"
	"court-booking/tests/common/httptest"
	usecasemock "court-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockResolver *usecasemock.MockCredentialResolver
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockResolver = usecasemock.NewMockCredentialResolver(s.mockCtrl)
	m := middleware.NewAuthMiddleware(s.mockResolver)

	s.router.GET("/me", m.RequireAuth(), func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": actor.UserID, "role": actor.Role})
	})
	s.router.GET("/admin", m.RequireAuth(), m.RequireRole(user.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	player := builder.NewUserBuilder().WithID("user_0123456789ab").BuildReconstructed()

	s.Run("success: bearer token", func() {
		s.mockResolver.EXPECT().Resolve(gomock.Any(), "bearer-token").Return(player, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "bearer-token")

		var body struct {
			UserID string `json:"user_id"`
			Role   string `json:"role"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("user_0123456789ab", body.UserID)
		s.Equal("user", body.Role)
	})

	s.Run("success: cookie wins over the header", func() {
		s.mockResolver.EXPECT().Resolve(gomock.Any(), "cookie-token").Return(player, nil)

		cookies := []*http.Cookie{{Name: cookie.SessionCookieName, Value: "cookie-token"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/me", nil, cookies, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: no credential", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Not authenticated")
	})

	s.Run("error: resolver failures", func() {
		cases := []struct {
			name    string
			err     error
			code    int
			message string
		}{
			{name: "expired session", err: errs.ErrSessionExpired, code: http.StatusUnauthorized, message: "Session expired"},
			{name: "garbage token", err: errs.Mark(errors.New("malformed"), errs.ErrUnauthenticated), code: http.StatusUnauthorized, message: "Not authenticated"},
			{name: "database down", err: errors.New("connection reset"), code: http.StatusInternalServerError, message: "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockResolver.EXPECT().Resolve(gomock.Any(), "token").Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.code, tc.message)
			})
		}
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRole() {
	s.Run("success: admin passes", func() {
		admin := builder.NewUserBuilder().AsAdmin().BuildReconstructed()
		s.mockResolver.EXPECT().Resolve(gomock.Any(), "token").Return(admin, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: player is forbidden", func() {
		player := builder.NewUserBuilder().BuildReconstructed()
		s.mockResolver.EXPECT().Resolve(gomock.Any(), "token").Return(player, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Admin access required")
	})
}
