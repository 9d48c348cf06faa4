package repository

import (
	"context"

	"court-booking/internal/domain/court"
	"court-booking/internal/infra"
	"court-booking/internal/infra/query"
	"court-booking/internal/infra/repository/converter"
	"court-booking/internal/pkg/pgconv"
)

type CourtWriteQueries interface {
	InsertCourt(ctx context.Context, db query.DBTX, arg query.InsertCourtParams) (int64, error)
	GetCourt(ctx context.Context, db query.DBTX, courtID string) (query.Court, error)
}

type CourtRepository struct {
	queries CourtWriteQueries
}

func NewCourtRepository(queries CourtWriteQueries) *CourtRepository {
	return &CourtRepository{queries: queries}
}

func (r *CourtRepository) Create(ctx context.Context, tx query.DBTX, c *court.Court) (bool, error) {
	n, err := r.queries.InsertCourt(ctx, tx, converter.CourtToInsertParams(c))
	if err != nil {
		return false, infra.WrapRepoErr("failed to create court", err)
	}
	return n > 0, nil
}

func (r *CourtRepository) FindByID(ctx context.Context, tx query.DBTX, id string) (*court.Court, error) {
	row, err := r.queries.GetCourt(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("court not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find court", err)
	}
	c, err := converter.CourtFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert court row", err, infra.KindDBFailure)
	}
	return c, nil
}
