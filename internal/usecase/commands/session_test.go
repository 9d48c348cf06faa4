//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"court-booking/internal/pkg/clock"
	"court-booking/internal/usecase/commands"
	"court-booking/tests/common/uowtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSessionCommands_PurgeExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := uowtest.New(ctrl)
	now := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
	cmds := commands.NewSessionCommands(h.UoW, clock.NewMockClock(now))

	h.ExpectWithin(1)
	h.Sessions.EXPECT().DeleteExpired(gomock.Any(), gomock.Any(), now).Return(int64(3), nil)

	purged, err := cmds.PurgeExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), purged)
}
