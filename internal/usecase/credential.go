package usecase

import (
	"context"

	"court-booking/internal/domain/user"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/pkg/jwt"
	"court-booking/internal/usecase/shared"
)

//go:generate mockgen -source=credential.go -destination=../../tests/mock/usecase/credential.go -package=usecasemock

// CredentialResolver maps a bearer credential to the user it belongs to.
type CredentialResolver interface {
	Resolve(ctx context.Context, token string) (*user.User, error)
}

type TokenValidator interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type credentialResolverImpl struct {
	uow    shared.UnitOfWork
	tokens TokenValidator
	clock  clock.Clock
}

func NewCredentialResolver(uow shared.UnitOfWork, tokens TokenValidator, clk clock.Clock) CredentialResolver {
	return &credentialResolverImpl{
		uow:    uow,
		tokens: tokens,
		clock:  clk,
	}
}

// Resolve tries the stateful session table first and falls back to the
// self-issued signed token. An expired session never falls through.
func (r *credentialResolverImpl) Resolve(ctx context.Context, token string) (*user.User, error) {
	if token == "" {
		return nil, errs.ErrUnauthenticated
	}

	reads := r.uow.CommandReads()
	sess, err := reads.SessionByToken(ctx, token)
	switch {
	case err == nil:
		if sess.IsExpired(r.clock.Now()) {
			return nil, errs.ErrSessionExpired
		}
		return r.loadUser(ctx, sess.UserID())
	case infra.IsKind(err, infra.KindNotFound):
	default:
		return nil, err
	}

	claims, err := r.tokens.ValidateToken(token)
	if err != nil {
		return nil, errs.ErrUnauthenticated
	}
	return r.loadUser(ctx, claims.UserID)
}

func (r *credentialResolverImpl) loadUser(ctx context.Context, userID string) (*user.User, error) {
	u, err := r.uow.CommandReads().UserByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUnauthenticated
		}
		return nil, err
	}
	return u, nil
}
