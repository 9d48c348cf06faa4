//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"court-booking/internal/domain/court"
	domreview "court-booking/internal/domain/review"
	"court-booking/internal/domain/user"
	"court-booking/internal/handler/api"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/usecase/commands"
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

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	actor        shared.Actor
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	handler := api.NewReviewHandler(s.mockCommands, s.mockQueries)
	s.actor = shared.Actor{UserID: testUserID, Role: user.RoleUser}

	s.router.POST("/reviews", fakeAuth(user.RoleUser), handler.Create)
	s.router.GET("/reviews/court/:court_id", handler.ListByCourt)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

type testCaseReview struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

func (s *ReviewHandlerTestSuite) TestCreate() {
	url := "/reviews"
	reqBody := builder.NewReviewBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201", func() {
		rating, _ := domreview.NewRating(5)
		comment, _ := domreview.NewComment(reqBody.Comment)
		created := domreview.ReconstructReview("review_0123456789ab", testUserID, "Test Player",
			court.SeedPadelID, rating, comment, time.Date(2025, 3, 2, 18, 0, 0, 0, time.UTC))
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, commands.CreateReviewInput{
			CourtID: court.SeedPadelID,
			Rating:  5,
			Comment: reqBody.Comment,
		}).Return(created, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("review_0123456789ab", response.ID)
		s.Equal(int32(5), response.Rating)
		s.Equal("Test Player", response.UserName)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseReview{
			{name: "missing court_id", mutate: testutil.Field("court_id", nil), expectCode: http.StatusBadRequest, expectInBody: "Invalid request format"},
			{name: "comment over 1000 chars", mutate: testutil.Field("comment", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest, expectInBody: "Invalid request format"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
			})
		}
	})

	s.Run("error: rating bounds come from the domain", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, gomock.Any()).Return(nil, domreview.ErrInvalidRating)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("rating", 6))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, domreview.ErrInvalidRating.Error())
	})

	s.Run("error: only players who paid may review", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, gomock.Any()).Return(nil, domreview.ErrNotEligible)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "You can only review courts you have booked")
	})

	s.Run("error: 401 without credentials", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Not authenticated")
	})
}

func (s *ReviewHandlerTestSuite) TestListByCourt() {
	s.Run("success: newest first as returned", func() {
		views := []*queries.ReviewView{
			builder.NewReviewBuilder().WithRating(4).BuildReadModel(),
			builder.NewReviewBuilder().WithRating(5).BuildReadModel(),
		}
		s.mockQueries.EXPECT().ListByCourt(gomock.Any(), court.SeedPadelID).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews/court/"+court.SeedPadelID, nil, "")

		var response []resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(int32(4), response[0].Rating)
	})
}
