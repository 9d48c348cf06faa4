package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeouts, prices)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Payment  PaymentConfig
	Pricing  PricingConfig
	Identity IdentityConfig
	Redis    RedisConfig
	Broker   BrokerConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Dubai"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Dubai"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"14400"` // 4*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"None"`
}

// Provider selects the checkout implementation: "stripe" or "omise".
type PaymentConfig struct {
	Provider            string        `envconfig:"PAYMENT_PROVIDER" default:"stripe"`
	Currency            string        `envconfig:"PAYMENT_CURRENCY" default:"aed"`
	Timeout             time.Duration `envconfig:"PAYMENT_TIMEOUT" default:"10s"`
	StripeAPIKey        string        `envconfig:"STRIPE_API_KEY"`
	StripeWebhookSecret string        `envconfig:"STRIPE_WEBHOOK_SECRET"`
	OmisePublicKey      string        `envconfig:"OMISE_PUBLIC_KEY"`
	OmiseSecretKey      string        `envconfig:"OMISE_SECRET_KEY"`
	OmiseSourceType     string        `envconfig:"OMISE_SOURCE_TYPE" default:"promptpay"`
}

// Prices are in minor units of the settlement currency.
type PricingConfig struct {
	BaseMinor    int64 `envconfig:"PRICE_BASE_MINOR" default:"10000"`
	PremiumMinor int64 `envconfig:"PRICE_PREMIUM_MINOR" default:"13500"`
}

type IdentityConfig struct {
	SessionDataURL string        `envconfig:"OAUTH_SESSION_URL" default:"https://demobackend.emergentagent.com/auth/v1/env/oauth/session-data"`
	Timeout        time.Duration `envconfig:"OAUTH_TIMEOUT" default:"10s"`
	SessionTTL     time.Duration `envconfig:"SESSION_TTL" default:"168h"`
}

// Empty Addr disables the catalog cache.
type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:""`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"5m"`
}

// Empty URL keeps notifications in the outbox and only logs them.
type BrokerConfig struct {
	URL      string `envconfig:"AMQP_URL" default:""`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"court-booking"`
}

type WorkerConfig struct {
	OutboxInterval         time.Duration `envconfig:"OUTBOX_INTERVAL" default:"5s"`
	OutboxBatchSize        int32         `envconfig:"OUTBOX_BATCH_SIZE" default:"50"`
	SessionJanitorInterval time.Duration `envconfig:"SESSION_JANITOR_INTERVAL" default:"1h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects combinations envconfig cannot express, such as keys that
// are only required for the selected payment provider.
func (c Config) Validate() error {
	switch c.Payment.Provider {
	case "stripe":
		if c.Payment.StripeAPIKey == "" || c.Payment.StripeWebhookSecret == "" {
			return fmt.Errorf("payment provider stripe requires STRIPE_API_KEY and STRIPE_WEBHOOK_SECRET")
		}
	case "omise":
		if c.Payment.OmisePublicKey == "" || c.Payment.OmiseSecretKey == "" {
			return fmt.Errorf("payment provider omise requires OMISE_PUBLIC_KEY and OMISE_SECRET_KEY")
		}
	default:
		return fmt.Errorf("unknown payment provider %q", c.Payment.Provider)
	}
	if c.Pricing.BaseMinor <= 0 || c.Pricing.PremiumMinor <= 0 {
		return fmt.Errorf("slot prices must be positive")
	}
	if c.CORS.AllowCredentials && len(c.CORS.AllowOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must not be empty when credentials are allowed")
	}
	return nil
}

// AllowsAnyOrigin reports whether CORS_ORIGINS contains the "*" wildcard.
func (c CORSConfig) AllowsAnyOrigin() bool {
	for _, o := range c.AllowOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Dubai",
			MaxConns: 10,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Dubai",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 14400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key",
			Duration: "168h",
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Payment: PaymentConfig{
			Provider:            "stripe",
			Currency:            "aed",
			Timeout:             2 * time.Second,
			StripeAPIKey:        "sk_test_dummy",
			StripeWebhookSecret: "whsec_test_secret",
		},
		Pricing: PricingConfig{
			BaseMinor:    10000,
			PremiumMinor: 13500,
		},
		Identity: IdentityConfig{
			SessionDataURL: "http://localhost:0/session-data",
			Timeout:        time.Second,
			SessionTTL:     7 * 24 * time.Hour,
		},
		Redis: RedisConfig{
			CacheTTL: time.Minute,
		},
		Broker: BrokerConfig{
			Exchange: "court-booking-test",
		},
		Worker: WorkerConfig{
			OutboxInterval:         time.Second,
			OutboxBatchSize:        10,
			SessionJanitorInterval: time.Minute,
		},
	}
}
