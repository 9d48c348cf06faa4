//go:build unit

package session_test

import (
	"testing"
	"time"

	"court-booking/internal/domain/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	s, err := session.NewSession(" tok_123 ", "user_0123456789ab", now, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "tok_123", s.Token())
	assert.Equal(t, now.Add(time.Hour), s.ExpiresAt())

	_, err = session.NewSession("", "user_0123456789ab", now, time.Hour)
	require.ErrorIs(t, err, session.ErrEmptyToken)
	_, err = session.NewSession("tok", "", now, time.Hour)
	require.ErrorIs(t, err, session.ErrEmptyUserID)
	_, err = session.NewSession("tok", "user_0123456789ab", now, 0)
	require.ErrorIs(t, err, session.ErrInvalidTTL)
}

func TestSessionIsExpired(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	s := session.ReconstructSession("tok", "user_0123456789ab", now.Add(time.Minute), now)

	assert.False(t, s.IsExpired(now))
	assert.True(t, s.IsExpired(now.Add(time.Minute)), "expiry instant counts as expired")
	assert.True(t, s.IsExpired(now.Add(2*time.Minute)))
}
