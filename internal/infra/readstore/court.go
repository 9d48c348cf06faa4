package readstore

import (
	"context"

	"court-booking/internal/infra"
	"court-booking/internal/infra/query"
	"court-booking/internal/pkg/pgconv"
	"court-booking/internal/usecase/queries"
)

type CourtReadQueries interface {
	ListActiveCourts(ctx context.Context, db query.DBTX) ([]query.Court, error)
	GetCourt(ctx context.Context, db query.DBTX, courtID string) (query.Court, error)
}

type CourtReadStore struct {
	queries CourtReadQueries
	db      query.DBTX
}

func NewCourtReadStore(queries CourtReadQueries, db query.DBTX) *CourtReadStore {
	return &CourtReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CourtReadStore) ListActive(ctx context.Context) ([]*queries.CourtView, error) {
	rows, err := r.queries.ListActiveCourts(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list courts", err)
	}
	views := make([]*queries.CourtView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toCourtView(row))
	}
	return views, nil
}

func (r *CourtReadStore) FindByID(ctx context.Context, id string) (*queries.CourtView, error) {
	row, err := r.queries.GetCourt(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("court not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find court", err)
	}
	return toCourtView(row), nil
}

func toCourtView(row query.Court) *queries.CourtView {
	return &queries.CourtView{
		ID:            row.CourtID,
		NameAr:        row.NameAr,
		NameEn:        row.NameEn,
		Type:          row.Type,
		DescriptionAr: row.DescriptionAr,
		DescriptionEn: row.DescriptionEn,
		ImageURL:      pgconv.StringPtrFromPgtype(row.ImageUrl),
		IsActive:      row.IsActive,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
