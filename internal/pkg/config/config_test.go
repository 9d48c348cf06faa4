//go:build unit

package config_test

import (
	"testing"

	"court-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "test config is valid", mutate: func(*config.Config) {}},
		{name: "stripe without webhook secret", mutate: func(c *config.Config) { c.Payment.StripeWebhookSecret = "" }, wantErr: "STRIPE_WEBHOOK_SECRET"},
		{name: "omise with keys", mutate: func(c *config.Config) {
			c.Payment.Provider = "omise"
			c.Payment.OmisePublicKey = "pkey_test"
			c.Payment.OmiseSecretKey = "skey_test"
		}},
		{name: "omise without keys", mutate: func(c *config.Config) { c.Payment.Provider = "omise" }, wantErr: "OMISE_SECRET_KEY"},
		{name: "unknown provider", mutate: func(c *config.Config) { c.Payment.Provider = "paypal" }, wantErr: "unknown payment provider"},
		{name: "non-positive price", mutate: func(c *config.Config) { c.Pricing.PremiumMinor = 0 }, wantErr: "prices must be positive"},
		{name: "credentials without origins", mutate: func(c *config.Config) { c.CORS.AllowOrigins = nil }, wantErr: "CORS_ORIGINS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "8080")
	t.Setenv("DB_USER", "court")
	t.Setenv("DB_PASSWORD", "court")
	t.Setenv("DB_NAME", "court_booking")
	t.Setenv("PAYMENT_PROVIDER", "stripe")
	t.Setenv("PRICE_PREMIUM_MINOR", "13500")
	t.Setenv("STRIPE_API_KEY", "sk_test_123")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_123")
	t.Setenv("CORS_ORIGINS", "*")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "stripe", cfg.Payment.Provider)
	assert.Equal(t, int64(13500), cfg.Pricing.PremiumMinor)
	assert.True(t, cfg.CORS.AllowsAnyOrigin())

	t.Setenv("PAYMENT_PROVIDER", "omise")
	_, err = config.LoadConfig()
	assert.Error(t, err)
}
