package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createSession = `-- name: CreateSession :exec
INSERT INTO user_sessions (session_token, user_id, expires_at, created_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (session_token) DO UPDATE
SET user_id = EXCLUDED.user_id, expires_at = EXCLUDED.expires_at
`

type CreateSessionParams struct {
	SessionToken string
	UserID       string
	ExpiresAt    pgtype.Timestamptz
	CreatedAt    pgtype.Timestamptz
}

func (q *Queries) CreateSession(ctx context.Context, db DBTX, arg CreateSessionParams) error {
	_, err := db.Exec(ctx, createSession, arg.SessionToken, arg.UserID, arg.ExpiresAt, arg.CreatedAt)
	return err
}

const getSession = `-- name: GetSession :one
SELECT session_token, user_id, expires_at, created_at FROM user_sessions WHERE session_token = $1
`

func (q *Queries) GetSession(ctx context.Context, db DBTX, token string) (UserSession, error) {
	var i UserSession
	err := db.QueryRow(ctx, getSession, token).Scan(
		&i.SessionToken,
		&i.UserID,
		&i.ExpiresAt,
		&i.CreatedAt,
	)
	return i, err
}

const deleteSession = `-- name: DeleteSession :execrows
DELETE FROM user_sessions WHERE session_token = $1
`

func (q *Queries) DeleteSession(ctx context.Context, db DBTX, token string) (int64, error) {
	tag, err := db.Exec(ctx, deleteSession, token)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteExpiredSessions = `-- name: DeleteExpiredSessions :execrows
DELETE FROM user_sessions WHERE expires_at <= $1
`

func (q *Queries) DeleteExpiredSessions(ctx context.Context, db DBTX, now pgtype.Timestamptz) (int64, error) {
	tag, err := db.Exec(ctx, deleteExpiredSessions, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
