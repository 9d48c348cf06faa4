package readstore

import (
	"context"

	"court-booking/internal/infra"
	"court-booking/internal/infra/query"
	"court-booking/internal/usecase/queries"
)

type StatsReadQueries interface {
	GetStats(ctx context.Context, db query.DBTX) (query.GetStatsRow, error)
}

type StatsReadStore struct {
	queries StatsReadQueries
	db      query.DBTX
}

func NewStatsReadStore(queries StatsReadQueries, db query.DBTX) *StatsReadStore {
	return &StatsReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *StatsReadStore) Stats(ctx context.Context) (*queries.StatsView, error) {
	row, err := r.queries.GetStats(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load stats", err)
	}
	return &queries.StatsView{
		TotalBookings:     row.TotalBookings,
		TotalUsers:        row.TotalUsers,
		TotalRevenueMinor: row.TotalRevenueMinor,
	}, nil
}
