package commands

import (
	"context"
	"log/slog"
	"time"

	"court-booking/internal/domain/session"
	"court-booking/internal/domain/user"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"
)

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

var (
	ErrEmailTaken         = errs.New("email already registered")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type AuthResult struct {
	User      *user.User
	Token     string
	ExpiresIn time.Duration
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Language string
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// ExchangeExternalSession turns a provider session id into a local stateful session.
	ExchangeExternalSession(ctx context.Context, sessionID string) (*AuthResult, error)
	Logout(ctx context.Context, token string) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	hasher     PasswordHasher
	tokens     TokenIssuer
	identity   IdentityProvider
	clock      clock.Clock
	sessionTTL time.Duration
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	hasher PasswordHasher,
	tokens TokenIssuer,
	identity IdentityProvider,
	clk clock.Clock,
	sessionTTL time.Duration,
) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		hasher:     hasher,
		tokens:     tokens,
		identity:   identity,
		clock:      clk,
		sessionTTL: sessionTTL,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	u, err := user.NewRegisteredUser(user.Registration{
		Email:    in.Email,
		Password: in.Password,
		Name:     in.Name,
		Phone:    in.Phone,
		Language: in.Language,
	}, a.hasher.Hash, a.clock.Now())
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return a.issueToken(u)
}

func (a *authCommandsImpl) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	creds, err := user.NewCredentials(email, password)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	u, err := a.uow.CommandReads().UserByEmail(ctx, creds.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a wrong password to avoid user enumeration
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	hash := u.PasswordHash()
	if hash == nil {
		return nil, ErrInvalidCredentials
	}
	if err := a.hasher.Compare(*hash, creds.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return a.issueToken(u)
}

func (a *authCommandsImpl) ExchangeExternalSession(ctx context.Context, sessionID string) (*AuthResult, error) {
	if sessionID == "" {
		return nil, errs.ErrUnauthenticated
	}

	ident, err := a.identity.ExchangeSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := a.clock.Now()
	var result *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, derr := a.upsertExternalUser(ctx, tx, ident, now)
		if derr != nil {
			return derr
		}

		s, derr := session.NewSession(ident.SessionToken, u.ID(), now, a.sessionTTL)
		if derr != nil {
			return derr
		}
		if derr = tx.Sessions().Create(ctx, tx.DB(), s); derr != nil {
			return derr
		}
		result = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("external session established", "user_id", result.ID())
	return &AuthResult{
		User:      result,
		Token:     ident.SessionToken,
		ExpiresIn: a.sessionTTL,
	}, nil
}

func (a *authCommandsImpl) upsertExternalUser(ctx context.Context, tx shared.Tx, ident *ExternalIdentity, now time.Time) (*user.User, error) {
	email, err := user.NewEmail(ident.Email)
	if err != nil {
		return nil, err
	}

	existing, err := tx.Reads().UserByEmail(ctx, email.Value())
	switch {
	case err == nil:
		name := ident.Name
		if name == "" {
			name = existing.Name()
		}
		if uerr := tx.Users().UpdateProfile(ctx, tx.DB(), existing.ID(), name, ident.Picture); uerr != nil {
			return nil, uerr
		}
		return user.ReconstructUser(
			existing.ID(),
			existing.Email(),
			existing.Phone(),
			name,
			ident.Picture,
			existing.Language(),
			existing.Role(),
			existing.PasswordHash(),
			existing.CreatedAt(),
		), nil
	case infra.IsKind(err, infra.KindNotFound):
		u, nerr := user.NewExternalUser(email.Value(), ident.Name, ident.Picture, now)
		if nerr != nil {
			return nil, nerr
		}
		if cerr := tx.Users().Create(ctx, tx.DB(), u); cerr != nil {
			return nil, cerr
		}
		return u, nil
	default:
		return nil, err
	}
}

// Logout revokes a stateful session; self-issued tokens simply expire.
func (a *authCommandsImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		deleted, err := tx.Sessions().Delete(ctx, tx.DB(), token)
		if err != nil {
			return err
		}
		if deleted {
			slog.Debug("session revoked")
		}
		return nil
	})
}

func (a *authCommandsImpl) issueToken(u *user.User) (*AuthResult, error) {
	token, err := a.tokens.GenerateToken(u.ID(), u.Email().Value(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &AuthResult{
		User:      u,
		Token:     token,
		ExpiresIn: a.tokens.TokenDuration(),
	}, nil
}
