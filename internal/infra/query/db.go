package query

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgxpool.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Queries is stateless; the connection or transaction is passed per call.
type Queries struct{}

func New() *Queries {
	return &Queries{}
}

const ping = `-- name: Ping :exec
SELECT 1
`

func (q *Queries) Ping(ctx context.Context, db DBTX) error {
	_, err := db.Exec(ctx, ping)
	return err
}
