//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"court-booking/internal/domain/court"
	domreview "court-booking/internal/domain/review"
	"court-booking/internal/domain/user"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/shared"
	"court-booking/tests/common/builder"
	"court-booking/tests/common/uowtest"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	h        *uowtest.Harness
	clock    *clock.MockClock
	commands commands.ReviewCommands
}

func (s *ReviewCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.h = uowtest.New(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC))
	s.commands = commands.NewReviewUseCase(s.h.UoW, s.clock)
}

func TestReviewCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReviewCommandsTestSuite))
}

func (s *ReviewCommandsTestSuite) TestCreate() {
	ctx := context.Background()
	author := builder.NewUserBuilder().BuildReconstructed()
	actor := shared.Actor{UserID: author.ID(), Role: user.RoleUser}
	in := commands.CreateReviewInput{CourtID: court.SeedPadelID, Rating: 5, Comment: "Great lighting"}

	s.Run("success: player with a paid booking", func() {
		s.SetupTest()
		s.h.Reads.EXPECT().UserByID(gomock.Any(), author.ID()).Return(author, nil)
		s.h.Reads.EXPECT().HasPaidBookingForCourt(gomock.Any(), author.ID(), court.SeedPadelID).Return(true, nil)
		s.h.ExpectWithin(1)
		s.h.Reviews.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		rev, err := s.commands.Create(ctx, actor, in)
		s.Require().NoError(err)
		s.Equal(author.Name(), rev.UserName())
		s.Equal(5, rev.Rating().Value())
		s.Equal(s.clock.Now(), rev.CreatedAt())
	})

	s.Run("error: no paid booking for the court", func() {
		s.SetupTest()
		s.h.Reads.EXPECT().UserByID(gomock.Any(), author.ID()).Return(author, nil)
		s.h.Reads.EXPECT().HasPaidBookingForCourt(gomock.Any(), author.ID(), court.SeedPadelID).Return(false, nil)

		_, err := s.commands.Create(ctx, actor, in)
		s.ErrorIs(err, domreview.ErrNotEligible)
	})

	s.Run("error: rating out of range", func() {
		s.SetupTest()
		s.h.Reads.EXPECT().UserByID(gomock.Any(), author.ID()).Return(author, nil)

		bad := in
		bad.Rating = 6
		_, err := s.commands.Create(ctx, actor, bad)
		s.ErrorIs(err, domreview.ErrInvalidRating)
	})

	s.Run("error: author no longer exists", func() {
		s.SetupTest()
		s.h.Reads.EXPECT().UserByID(gomock.Any(), author.ID()).Return(nil, notFound())

		_, err := s.commands.Create(ctx, actor, in)
		s.ErrorIs(err, errs.ErrUnauthenticated)
	})
}
