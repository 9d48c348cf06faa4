package readstore

import (
	"context"

	"court-booking/internal/infra"
	"court-booking/internal/infra/query"
	"court-booking/internal/pkg/pgconv"
	"court-booking/internal/usecase/queries"
)

type ReviewReadQueries interface {
	ListReviewsByCourt(ctx context.Context, db query.DBTX, arg query.ListReviewsByCourtParams) ([]query.Review, error)
}

type ReviewReadStore struct {
	queries ReviewReadQueries
	db      query.DBTX
}

func NewReviewReadStore(queries ReviewReadQueries, db query.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) ListByCourt(ctx context.Context, courtID string, limit int32) ([]*queries.ReviewView, error) {
	rows, err := r.queries.ListReviewsByCourt(ctx, r.db, query.ListReviewsByCourtParams{
		CourtID: courtID,
		Limit:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by court", err)
	}

	views := make([]*queries.ReviewView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.ReviewView{
			ID:        row.ReviewID,
			UserID:    row.UserID,
			UserName:  row.UserName,
			CourtID:   row.CourtID,
			Rating:    row.Rating,
			Comment:   row.Comment,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}
