package repository

import (
	"context"
	"time"

	"court-booking/internal/infra"
	"court-booking/internal/infra/query"
	"court-booking/internal/pkg/ident"
	"court-booking/internal/pkg/pgconv"
	"court-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

const maxLastErrorLength = 500

type OutboxWriteQueries interface {
	InsertOutboxJob(ctx context.Context, db query.DBTX, arg query.InsertOutboxJobParams) error
	ClaimPendingOutboxJobs(ctx context.Context, db query.DBTX, arg query.ClaimPendingOutboxJobsParams) ([]query.OutboxJob, error)
	MarkOutboxJobSent(ctx context.Context, db query.DBTX, arg query.MarkOutboxJobSentParams) error
	MarkOutboxJobRetry(ctx context.Context, db query.DBTX, arg query.MarkOutboxJobRetryParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
}

func NewOutboxRepository(queries OutboxWriteQueries) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, tx query.DBTX, msg shared.OutboxMessage) error {
	id := msg.ID
	if id == "" {
		id = ident.New(ident.PrefixOutbox)
	}
	params := query.InsertOutboxJobParams{
		JobID:      id,
		Kind:       msg.Kind,
		RoutingKey: msg.RoutingKey,
		Payload:    msg.Payload,
		RunAt:      pgconv.TimeToPgtype(msg.RunAt),
	}
	if err := r.queries.InsertOutboxJob(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to enqueue outbox job", err)
	}
	return nil
}

func (r *OutboxRepository) ClaimPending(ctx context.Context, tx query.DBTX, now time.Time, limit int32) ([]shared.OutboxMessage, error) {
	rows, err := r.queries.ClaimPendingOutboxJobs(ctx, tx, query.ClaimPendingOutboxJobsParams{
		Now:   pgconv.TimeToPgtype(now),
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim outbox jobs", err)
	}
	msgs := make([]shared.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		msgs = append(msgs, shared.OutboxMessage{
			ID:         row.JobID,
			Kind:       row.Kind,
			RoutingKey: row.RoutingKey,
			Payload:    row.Payload,
			Attempts:   row.Attempts,
			RunAt:      pgconv.TimeFromPgtype(row.RunAt),
		})
	}
	return msgs, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, tx query.DBTX, id string, now time.Time) error {
	err := r.queries.MarkOutboxJobSent(ctx, tx, query.MarkOutboxJobSentParams{
		JobID:  id,
		SentAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox job sent", err)
	}
	return nil
}

func (r *OutboxRepository) MarkRetry(ctx context.Context, tx query.DBTX, id string, cause error, runAt time.Time, maxAttempts int32) error {
	lastError := pgtype.Text{}
	if cause != nil {
		msg := cause.Error()
		if len(msg) > maxLastErrorLength {
			msg = msg[:maxLastErrorLength]
		}
		lastError = pgtype.Text{String: msg, Valid: true}
	}
	err := r.queries.MarkOutboxJobRetry(ctx, tx, query.MarkOutboxJobRetryParams{
		JobID:       id,
		LastError:   lastError,
		RunAt:       pgconv.TimeToPgtype(runAt),
		MaxAttempts: maxAttempts,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to reschedule outbox job", err)
	}
	return nil
}
