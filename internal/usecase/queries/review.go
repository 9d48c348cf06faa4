package queries

import (
	"context"
)

//go:generate mockgen -source=review.go -destination=../../../tests/mock/queries/review.go -package=queriesmock

type ReviewReadStore interface {
	ListByCourt(ctx context.Context, courtID string, limit int32) ([]*ReviewView, error)
}

type ReviewQueries interface {
	ListByCourt(ctx context.Context, courtID string) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	repo ReviewReadStore
}

func NewReviewQueries(repo ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) ListByCourt(ctx context.Context, courtID string) ([]*ReviewView, error) {
	rows, err := q.repo.ListByCourt(ctx, courtID, MaxListSize)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*ReviewView{}
	}
	return rows, nil
}
