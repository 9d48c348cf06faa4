//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"court-booking/internal/domain/session"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/pkg/jwt"
	"court-booking/internal/usecase"
	"court-booking/tests/common/builder"
	"court-booking/tests/common/uowtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCredentialResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	tokens := jwt.NewService("test-secret", time.Hour, clk)
	u := builder.NewUserBuilder().BuildReconstructed()
	missing := infra.WrapRepoErr("session not found", nil, infra.KindNotFound)

	setup := func(t *testing.T) (*uowtest.Harness, usecase.CredentialResolver) {
		h := uowtest.New(gomock.NewController(t))
		return h, usecase.NewCredentialResolver(h.UoW, tokens, clk)
	}

	t.Run("stateful session", func(t *testing.T) {
		h, r := setup(t)
		sess := session.ReconstructSession("ext-token", u.ID(), now.Add(time.Hour), now)
		h.Reads.EXPECT().SessionByToken(gomock.Any(), "ext-token").Return(sess, nil)
		h.Reads.EXPECT().UserByID(gomock.Any(), u.ID()).Return(u, nil)

		got, err := r.Resolve(ctx, "ext-token")
		require.NoError(t, err)
		assert.Equal(t, u.ID(), got.ID())
	})

	t.Run("expired session does not fall back to the signed token", func(t *testing.T) {
		h, r := setup(t)
		sess := session.ReconstructSession("ext-token", u.ID(), now, now.Add(-time.Hour))
		h.Reads.EXPECT().SessionByToken(gomock.Any(), "ext-token").Return(sess, nil)

		_, err := r.Resolve(ctx, "ext-token")
		require.ErrorIs(t, err, errs.ErrSessionExpired)
	})

	t.Run("signed token", func(t *testing.T) {
		h, r := setup(t)
		token, err := tokens.GenerateToken(u.ID(), u.Email().Value(), u.Role())
		require.NoError(t, err)
		h.Reads.EXPECT().SessionByToken(gomock.Any(), token).Return(nil, missing)
		h.Reads.EXPECT().UserByID(gomock.Any(), u.ID()).Return(u, nil)

		got, err := r.Resolve(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, u.ID(), got.ID())
	})

	t.Run("garbage token", func(t *testing.T) {
		h, r := setup(t)
		h.Reads.EXPECT().SessionByToken(gomock.Any(), "garbage").Return(nil, missing)

		_, err := r.Resolve(ctx, "garbage")
		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("signed token for a deleted user", func(t *testing.T) {
		h, r := setup(t)
		token, err := tokens.GenerateToken("user_gone", "gone@example.com", u.Role())
		require.NoError(t, err)
		h.Reads.EXPECT().SessionByToken(gomock.Any(), token).Return(nil, missing)
		h.Reads.EXPECT().UserByID(gomock.Any(), "user_gone").Return(nil, missing)

		_, err = r.Resolve(ctx, token)
		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("empty token", func(t *testing.T) {
		_, r := setup(t)
		_, err := r.Resolve(ctx, "")
		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}
