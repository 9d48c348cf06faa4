package queries

import (
	"context"

	"court-booking/internal/infra"
)

//go:generate mockgen -source=court.go -destination=../../../tests/mock/queries/court.go -package=queriesmock

type CourtReadStore interface {
	ListActive(ctx context.Context) ([]*CourtView, error)
	FindByID(ctx context.Context, id string) (*CourtView, error)
}

type CourtQueries interface {
	List(ctx context.Context) ([]*CourtView, error)
	Get(ctx context.Context, id string) (*CourtView, error)
}

type courtQueriesImpl struct {
	readStore CourtReadStore
}

func NewCourtQueries(readStore CourtReadStore) CourtQueries {
	return &courtQueriesImpl{readStore: readStore}
}

func (q *courtQueriesImpl) List(ctx context.Context) ([]*CourtView, error) {
	courts, err := q.readStore.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if courts == nil {
		courts = []*CourtView{}
	}
	return courts, nil
}

func (q *courtQueriesImpl) Get(ctx context.Context, id string) (*CourtView, error) {
	c, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	return c, nil
}
