//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/court"
	"court-booking/internal/domain/user"
	"court-booking/internal/handler/api"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/pkg/errs"
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

type BookingHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockBookingCommands
	mockQueries      *queriesmock.MockBookingQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
	actor            shared.Actor
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	handler := api.NewBookingHandler(s.mockCommands, s.mockQueries, s.mockAvailability)
	s.actor = shared.Actor{UserID: testUserID, Role: user.RoleUser}

	s.router.GET("/bookings/availability", handler.Availability)
	authed := s.router.Group("/bookings", fakeAuth(user.RoleUser))
	authed.POST("", handler.Create)
	authed.GET("/my", handler.ListMine)
	authed.GET("/:id", handler.Get)
	authed.PATCH("/:id/cancel", handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestAvailability() {
	s.Run("success: returns every slot with price", func() {
		view := &queries.AvailabilityView{
			CourtID: court.SeedPadelID,
			Date:    "2025-03-01",
			Slots: []queries.SlotView{
				{TimeSlot: "08:00", Price: 100, PriceMinor: 10000, IsAvailable: true},
				{TimeSlot: "10:00", Price: 100, PriceMinor: 10000, IsAvailable: false},
				{TimeSlot: "18:00", Price: 150, PriceMinor: 15000, IsAvailable: true},
			},
		}
		s.mockAvailability.EXPECT().ForDate(gomock.Any(), court.SeedPadelID, "2025-03-01").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings/availability?court_id="+court.SeedPadelID+"&date=2025-03-01", nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Slots, 3)
		s.False(response.Slots[1].IsAvailable)
		s.Equal(int64(15000), response.Slots[2].PriceMinor)
		s.InDelta(150.0, response.Slots[2].Price, 0.001)
	})

	s.Run("error: both query parameters are required", func() {
		for _, path := range []string{
			"/bookings/availability?date=2025-03-01",
			"/bookings/availability?court_id=" + court.SeedPadelID,
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
		}
	})

	s.Run("error: malformed date", func() {
		s.mockAvailability.EXPECT().ForDate(gomock.Any(), court.SeedPadelID, "01/03/2025").
			Return(nil, booking.ErrInvalidDate)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings/availability?court_id="+court.SeedPadelID+"&date=01/03/2025", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, booking.ErrInvalidDate.Error())
	})
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	b := builder.NewBookingBuilder().WithUserID(testUserID)
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: returns 201 with the pending booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, commands.CreateBookingInput{
			CourtID:  court.SeedPadelID,
			Date:     "2025-03-01",
			TimeSlot: "10:00",
		}).Return(b.BuildDomain(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(b.ID, response.ID)
		s.Equal("pending", response.Status)
		s.Equal("pending", response.PaymentStatus)
		s.Equal(int32(60), response.Duration)
		s.InDelta(100.0, response.Price, 0.001)
	})

	s.Run("error: 401 without credentials", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Not authenticated")
	})

	s.Run("error: required fields", func() {
		for _, field := range []string{"court_id", "date", "time_slot"} {
			s.Run(field, func() {
				body := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: use case failures map to status codes", func() {
		cases := []struct {
			name    string
			err     error
			code    int
			message string
		}{
			{name: "slot taken", err: booking.ErrSlotTaken, code: http.StatusBadRequest, message: "Time slot not available"},
			{name: "invalid slot", err: booking.ErrInvalidSlot, code: http.StatusBadRequest, message: booking.ErrInvalidSlot.Error()},
			{name: "unknown court", err: queries.ErrCourtNotFound, code: http.StatusNotFound, message: "Court not found"},
			{name: "database down", err: errors.New("connection reset"), code: http.StatusInternalServerError, message: "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, gomock.Any()).Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.code, tc.message)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestListMine() {
	s.Run("success: returns the caller's bookings", func() {
		views := []*queries.BookingView{
			builder.NewBookingBuilder().WithUserID(testUserID).BuildReadModel(),
			builder.NewBookingBuilder().WithUserID(testUserID).WithSlot("2025-03-02", "18:00").AsConfirmedPaid().BuildReadModel(),
		}
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.actor).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/my", nil, "token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("confirmed", response[1].Status)
		s.Equal("paid", response[1].PaymentStatus)
	})

	s.Run("success: empty list renders as an array", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.actor).Return([]*queries.BookingView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/my", nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq("[]", rec.Body.String())
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().WithUserID(testUserID).BuildReadModel()

	s.Run("success: owner reads the booking", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), view.ID, s.actor).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID, nil, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: someone else's booking", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), view.ID, s.actor).Return(nil, errs.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})

	s.Run("error: unknown booking", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), "booking_missing", s.actor).Return(nil, queries.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/booking_missing", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	id := "booking_0123456789ab"
	url := "/bookings/" + id + "/cancel"

	s.Run("success", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actor, id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "token")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Booking cancelled successfully", response.Message)
	})

	s.Run("error: use case failures map to status codes", func() {
		cases := []struct {
			name    string
			err     error
			code    int
			message string
		}{
			{name: "already cancelled", err: booking.ErrAlreadyCancelled, code: http.StatusBadRequest, message: "Booking already cancelled"},
			{name: "not the owner", err: errs.ErrForbidden, code: http.StatusForbidden, message: "Access denied"},
			{name: "unknown booking", err: queries.ErrBookingNotFound, code: http.StatusNotFound, message: "Booking not found"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actor, id).Return(tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.code, tc.message)
			})
		}
	})
}
