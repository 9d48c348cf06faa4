//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"court-booking/internal/domain/court"
	"court-booking/internal/domain/user"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/shared"
	"court-booking/tests/common/builder"
	"court-booking/tests/common/uowtest"
	commandsmock "court-booking/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CourtCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	h        *uowtest.Harness
	cache    *commandsmock.MockCatalogInvalidator
	commands commands.CourtCommands
	admin    shared.Actor
}

func (s *CourtCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.h = uowtest.New(s.ctrl)
	s.cache = commandsmock.NewMockCatalogInvalidator(s.ctrl)
	s.commands = commands.NewCourtCommands(s.h.UoW, s.cache, clock.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	s.admin = shared.Actor{UserID: "user_admin", Role: user.RoleAdmin}
}

func TestCourtCommandsSuite(t *testing.T) {
	suite.Run(t, new(CourtCommandsTestSuite))
}

func (s *CourtCommandsTestSuite) TestCreate() {
	ctx := context.Background()
	spec := builder.NewCourtBuilder().AsFootball().BuildSpec()

	s.Run("success: admin creates and the catalog cache is dropped", func() {
		s.SetupTest()
		s.h.ExpectWithin(1)
		s.h.Courts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		s.cache.EXPECT().InvalidateCatalog(gomock.Any()).Return(nil)

		c, err := s.commands.Create(ctx, s.admin, spec)
		s.Require().NoError(err)
		s.Equal(court.CategoryFootball, c.Category())
		s.True(c.IsActive())
	})

	s.Run("success: cache failure does not fail the write", func() {
		s.SetupTest()
		s.h.ExpectWithin(1)
		s.h.Courts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		s.cache.EXPECT().InvalidateCatalog(gomock.Any()).Return(errors.New("redis down"))

		_, err := s.commands.Create(ctx, s.admin, spec)
		s.Require().NoError(err)
	})

	s.Run("error: regular user", func() {
		s.SetupTest()
		_, err := s.commands.Create(ctx, shared.Actor{UserID: "user_x", Role: user.RoleUser}, spec)
		s.ErrorIs(err, errs.ErrForbidden)
	})

	s.Run("error: unknown category", func() {
		s.SetupTest()
		bad := spec
		bad.Category = "tennis"
		_, err := s.commands.Create(ctx, s.admin, bad)
		s.ErrorIs(err, court.ErrInvalidCategory)
	})
}

func (s *CourtCommandsTestSuite) TestSeedCatalog() {
	ctx := context.Background()

	s.Run("first start inserts both default courts", func() {
		s.SetupTest()
		var ids []string
		s.h.ExpectWithin(1)
		s.h.Courts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, c *court.Court) (bool, error) {
				ids = append(ids, c.ID())
				return true, nil
			}).Times(2)
		s.cache.EXPECT().InvalidateCatalog(gomock.Any()).Return(nil)

		added, err := s.commands.SeedCatalog(ctx)
		s.Require().NoError(err)
		s.Equal(2, added)
		s.Equal([]string{court.SeedPadelID, court.SeedFootballID}, ids)
	})

	s.Run("restart is a no-op and keeps the cache", func() {
		s.SetupTest()
		s.h.ExpectWithin(1)
		s.h.Courts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).Times(2)

		added, err := s.commands.SeedCatalog(ctx)
		s.Require().NoError(err)
		s.Zero(added)
	})
}
