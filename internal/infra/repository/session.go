package repository

import (
	"context"
	"time"

	"court-booking/internal/domain/session"
	"court-booking/internal/infra"
	"court-booking/internal/infra/query"
	"court-booking/internal/infra/repository/converter"
	"court-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type SessionWriteQueries interface {
	CreateSession(ctx context.Context, db query.DBTX, arg query.CreateSessionParams) error
	GetSession(ctx context.Context, db query.DBTX, token string) (query.UserSession, error)
	DeleteSession(ctx context.Context, db query.DBTX, token string) (int64, error)
	DeleteExpiredSessions(ctx context.Context, db query.DBTX, now pgtype.Timestamptz) (int64, error)
}

type SessionRepository struct {
	queries SessionWriteQueries
}

func NewSessionRepository(queries SessionWriteQueries) *SessionRepository {
	return &SessionRepository{queries: queries}
}

func (r *SessionRepository) Create(ctx context.Context, tx query.DBTX, s *session.Session) error {
	if err := r.queries.CreateSession(ctx, tx, converter.SessionToCreateParams(s)); err != nil {
		return infra.WrapRepoErr("failed to create session", err)
	}
	return nil
}

func (r *SessionRepository) FindByToken(ctx context.Context, tx query.DBTX, token string) (*session.Session, error) {
	row, err := r.queries.GetSession(ctx, tx, token)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find session", err)
	}
	return converter.SessionFromRow(row), nil
}

func (r *SessionRepository) Delete(ctx context.Context, tx query.DBTX, token string) (bool, error) {
	n, err := r.queries.DeleteSession(ctx, tx, token)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete session", err)
	}
	return n > 0, nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context, tx query.DBTX, now time.Time) (int64, error) {
	n, err := r.queries.DeleteExpiredSessions(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired sessions", err)
	}
	return n, nil
}
