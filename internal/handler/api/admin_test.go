//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/user"
	"court-booking/internal/handler/api"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/queries"
	"court-booking/internal/usecase/shared"
	"court-booking/tests/common/builder"
	"court-booking/tests/common/httptest"
	queriesmock "court-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAdminQueries
	admin       shared.Actor
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAdminQueries(s.mockCtrl)
	handler := api.NewAdminHandler(s.mockQueries)
	s.admin = shared.Actor{UserID: testUserID, Role: user.RoleAdmin}

	admin := s.router.Group("/admin", fakeAuth(user.RoleAdmin))
	admin.GET("/bookings", handler.ListBookings)
	admin.GET("/users", handler.ListUsers)
	admin.GET("/stats", handler.Stats)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestListBookings() {
	s.Run("success: passes the status filter through", func() {
		views := []*queries.BookingView{builder.NewBookingBuilder().AsConfirmedPaid().BuildReadModel()}
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), s.admin, "confirmed").Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?status=confirmed", nil, "token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("confirmed", response[0].Status)
	})

	s.Run("success: no filter", func() {
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), s.admin, "").Return([]*queries.BookingView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings", nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: unknown status", func() {
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), s.admin, "archived").Return(nil, booking.ErrInvalidStatus)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?status=archived", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, booking.ErrInvalidStatus.Error())
	})

	s.Run("error: 401 without credentials", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Not authenticated")
	})
}

func (s *AdminHandlerTestSuite) TestListUsers() {
	s.Run("success", func() {
		views := []*queries.UserView{
			builder.NewUserBuilder().BuildReadModel(),
			builder.NewUserBuilder().WithEmail("coach@example.com").AsAdmin().BuildReadModel(),
		}
		s.mockQueries.EXPECT().ListUsers(gomock.Any(), s.admin).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/users", nil, "token")

		var response []resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("admin", response[1].Role)
		s.Equal("coach@example.com", response[1].Email)
	})

	s.Run("error: forbidden for players", func() {
		s.mockQueries.EXPECT().ListUsers(gomock.Any(), s.admin).Return(nil, errs.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/users", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

func (s *AdminHandlerTestSuite) TestStats() {
	s.Run("success: revenue in both units", func() {
		s.mockQueries.EXPECT().Stats(gomock.Any(), s.admin).Return(&queries.StatsView{
			TotalBookings:     4,
			TotalUsers:        3,
			TotalRevenueMinor: 20000,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/stats", nil, "token")

		var response resdto.StatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(4), response.TotalBookings)
		s.Equal(int64(3), response.TotalUsers)
		s.Equal(int64(20000), response.TotalRevenueMinor)
		s.InDelta(200.0, response.TotalRevenue, 0.001)
	})
}
