package commands

import (
	"context"
	"time"

	"court-booking/internal/domain/payment"
	"court-booking/internal/domain/user"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hashed, plain string) error
}

type TokenIssuer interface {
	GenerateToken(userID, email string, role user.Role) (string, error)
	TokenDuration() time.Duration
}

// ExternalIdentity is what the identity provider returns for a login session id.
type ExternalIdentity struct {
	Email        string
	Name         string
	Picture      *string
	SessionToken string
}

// IdentityProvider returns errs.ErrUnauthenticated when the provider rejects
// the session id and errs.ErrUpstream when it cannot be reached.
type IdentityProvider interface {
	ExchangeSession(ctx context.Context, sessionID string) (*ExternalIdentity, error)
}

type CheckoutRequest struct {
	BookingID    string
	UserID       string
	Description  string
	AmountMinor  int64
	Currency     string
	ReturnOrigin string
}

type CheckoutSession struct {
	SessionID   string
	RedirectURL string
}

// PaymentGateway wraps the external payment processor. Failures and
// timeouts are reported as errs.ErrUpstream.
type PaymentGateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	FetchStatus(ctx context.Context, sessionID string) (*payment.Report, error)
	// ParseWebhook returns payment.ErrInvalidSignature for unauthenticated
	// payloads and a nil report for events that carry no payment outcome.
	ParseWebhook(ctx context.Context, payload []byte, signature string) (*payment.Report, error)
}

type CatalogInvalidator interface {
	InvalidateCatalog(ctx context.Context) error
}
