//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"court-booking/internal/domain/court"
	"court-booking/internal/domain/user"
	"court-booking/internal/handler/api"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/queries"
	"court-booking/internal/usecase/shared"
	"court-booking/tests/common/builder"
	"court-booking/tests/common/httptest"
	"court-booking/tests/common/testutil"
	commandsmock "court-booking/tests/mock/commands"
	queriesmock "court-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CourtHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCourtCommands
	mockQueries  *queriesmock.MockCourtQueries
}

func (s *CourtHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCourtCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCourtQueries(s.mockCtrl)
	handler := api.NewCourtHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/courts", handler.List)
	s.router.GET("/courts/:id", handler.Get)
	s.router.POST("/courts", fakeAuth(user.RoleAdmin), handler.Create)
}

func (s *CourtHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCourtHandlerSuite(t *testing.T) {
	suite.Run(t, new(CourtHandlerTestSuite))
}

func (s *CourtHandlerTestSuite) TestList() {
	s.Run("success: both seeded courts", func() {
		views := []*queries.CourtView{
			builder.NewCourtBuilder().BuildReadModel(),
			builder.NewCourtBuilder().AsFootball().BuildReadModel(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/courts", nil, "")

		var response []resdto.CourtResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("padel", response[0].Type)
		s.Equal("football", response[1].Type)
		s.Equal("Padel Court", response[0].NameEn)
	})
}

func (s *CourtHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		view := builder.NewCourtBuilder().BuildReadModel()
		s.mockQueries.EXPECT().Get(gomock.Any(), court.SeedPadelID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/courts/"+court.SeedPadelID, nil, "")

		var response resdto.CourtResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(court.SeedPadelID, response.ID)
		s.True(response.IsActive)
	})

	s.Run("error: unknown court", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), "court_missing").Return(nil, queries.ErrCourtNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/courts/court_missing", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Court not found")
	})
}

func (s *CourtHandlerTestSuite) TestCreate() {
	b := builder.NewCourtBuilder()
	reqBody := b.BuildCreateRequestDTO()
	admin := shared.Actor{UserID: testUserID, Role: user.RoleAdmin}

	s.Run("success: returns 201", func() {
		created, err := b.BuildDomain()
		s.Require().NoError(err)
		s.mockCommands.EXPECT().Create(gomock.Any(), admin, b.BuildSpec()).Return(created, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/courts", reqBody, "token")

		var response resdto.CourtResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(created.ID(), response.ID)
		s.Equal("ملعب البادل", response.NameAr)
	})

	s.Run("error: required fields", func() {
		for _, field := range []string{"name_ar", "name_en", "type"} {
			s.Run(field, func() {
				body := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/courts", body, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: unknown category", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), admin, gomock.Any()).Return(nil, court.ErrInvalidCategory)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("type", "tennis"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/courts", body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, court.ErrInvalidCategory.Error())
	})

	s.Run("error: non-admin", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), admin, gomock.Any()).Return(nil, errs.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/courts", reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}
