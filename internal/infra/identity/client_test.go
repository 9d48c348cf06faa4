//go:build unit

package identity_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"court-booking/internal/infra/identity"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) *identity.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return identity.NewClient(config.IdentityConfig{SessionDataURL: srv.URL, Timeout: time.Second})
}

func TestClient_ExchangeSession(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "sess-123", r.Header.Get("X-Session-ID"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"email":"player@example.com","name":"Player","picture":"https://cdn.example.com/p.png","session_token":"tok-1"}`))
		})

		got, err := c.ExchangeSession(ctx, "sess-123")
		require.NoError(t, err)
		assert.Equal(t, "player@example.com", got.Email)
		assert.Equal(t, "tok-1", got.SessionToken)
		require.NotNil(t, got.Picture)
		assert.Equal(t, "https://cdn.example.com/p.png", *got.Picture)
	})

	t.Run("rejected session id", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		_, err := c.ExchangeSession(ctx, "bad")
		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("incomplete payload", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"email":"player@example.com"}`))
		})
		_, err := c.ExchangeSession(ctx, "sess-123")
		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("provider failure is upstream", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		_, err := c.ExchangeSession(ctx, "sess-123")
		assert.True(t, errs.Is(err, errs.ErrUpstream))
	})

	t.Run("garbled body is upstream", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		})
		_, err := c.ExchangeSession(ctx, "sess-123")
		assert.True(t, errs.Is(err, errs.ErrUpstream))
	})

	t.Run("unreachable provider is upstream", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()
		c := identity.NewClient(config.IdentityConfig{SessionDataURL: url, Timeout: time.Second})

		_, err := c.ExchangeSession(ctx, "sess-123")
		assert.True(t, errs.Is(err, errs.ErrUpstream))
	})
}
