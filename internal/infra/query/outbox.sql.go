package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertOutboxJob = `-- name: InsertOutboxJob :exec
INSERT INTO outbox_jobs (job_id, kind, routing_key, payload, run_at, created_at)
VALUES ($1, $2, $3, $4, $5, $5)
`

type InsertOutboxJobParams struct {
	JobID      string
	Kind       string
	RoutingKey string
	Payload    []byte
	RunAt      pgtype.Timestamptz
}

func (q *Queries) InsertOutboxJob(ctx context.Context, db DBTX, arg InsertOutboxJobParams) error {
	_, err := db.Exec(ctx, insertOutboxJob, arg.JobID, arg.Kind, arg.RoutingKey, arg.Payload, arg.RunAt)
	return err
}

// Rows stay locked until the surrounding transaction ends.
const claimPendingOutboxJobs = `-- name: ClaimPendingOutboxJobs :many
SELECT job_id, kind, routing_key, payload, status, attempts, last_error, run_at, created_at, sent_at
FROM outbox_jobs
WHERE status = 'pending' AND run_at <= $1
ORDER BY run_at, job_id
LIMIT $2
FOR UPDATE SKIP LOCKED
`

type ClaimPendingOutboxJobsParams struct {
	Now   pgtype.Timestamptz
	Limit int32
}

func (q *Queries) ClaimPendingOutboxJobs(ctx context.Context, db DBTX, arg ClaimPendingOutboxJobsParams) ([]OutboxJob, error) {
	rows, err := db.Query(ctx, claimPendingOutboxJobs, arg.Now, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []OutboxJob
	for rows.Next() {
		var i OutboxJob
		if err := rows.Scan(
			&i.JobID,
			&i.Kind,
			&i.RoutingKey,
			&i.Payload,
			&i.Status,
			&i.Attempts,
			&i.LastError,
			&i.RunAt,
			&i.CreatedAt,
			&i.SentAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const markOutboxJobSent = `-- name: MarkOutboxJobSent :exec
UPDATE outbox_jobs SET status = 'sent', attempts = attempts + 1, sent_at = $2, last_error = NULL
WHERE job_id = $1
`

type MarkOutboxJobSentParams struct {
	JobID  string
	SentAt pgtype.Timestamptz
}

func (q *Queries) MarkOutboxJobSent(ctx context.Context, db DBTX, arg MarkOutboxJobSentParams) error {
	_, err := db.Exec(ctx, markOutboxJobSent, arg.JobID, arg.SentAt)
	return err
}

// Jobs past MaxAttempts are parked as failed.
const markOutboxJobRetry = `-- name: MarkOutboxJobRetry :exec
UPDATE outbox_jobs
SET attempts = attempts + 1,
    last_error = $2,
    run_at = $3,
    status = CASE WHEN attempts + 1 >= $4 THEN 'failed' ELSE 'pending' END
WHERE job_id = $1
`

type MarkOutboxJobRetryParams struct {
	JobID       string
	LastError   pgtype.Text
	RunAt       pgtype.Timestamptz
	MaxAttempts int32
}

func (q *Queries) MarkOutboxJobRetry(ctx context.Context, db DBTX, arg MarkOutboxJobRetryParams) error {
	_, err := db.Exec(ctx, markOutboxJobRetry, arg.JobID, arg.LastError, arg.RunAt, arg.MaxAttempts)
	return err
}
