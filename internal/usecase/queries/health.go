package queries

import (
	"context"

	"court-booking/internal/infra/query"
	"court-booking/internal/usecase/shared"
)

//go:generate mockgen -source=health.go -destination=../../../tests/mock/queries/health.go -package=queriesmock

type Pinger interface {
	Ping(ctx context.Context, db query.DBTX) error
}

type HealthQueries interface {
	// Check reports whether the database answers.
	Check(ctx context.Context) error
}

type healthQueriesImpl struct {
	uow    shared.UnitOfWork
	pinger Pinger
}

func NewHealthQueries(uow shared.UnitOfWork, pinger Pinger) HealthQueries {
	return &healthQueriesImpl{uow: uow, pinger: pinger}
}

func (q *healthQueriesImpl) Check(ctx context.Context) error {
	return q.uow.WithDB(ctx, func(ctx context.Context, db query.DBTX) error {
		return q.pinger.Ping(ctx, db)
	})
}
