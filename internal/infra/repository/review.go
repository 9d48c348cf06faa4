package repository

import (
	"context"

	"court-booking/internal/domain/review"
	"court-booking/internal/infra"
	"court-booking/internal/infra/query"
	"court-booking/internal/infra/repository/converter"
)

type ReviewWriteQueries interface {
	InsertReview(ctx context.Context, db query.DBTX, arg query.InsertReviewParams) error
}

type ReviewRepository struct {
	queries ReviewWriteQueries
}

func NewReviewRepository(queries ReviewWriteQueries) *ReviewRepository {
	return &ReviewRepository{
		queries: queries,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, tx query.DBTX, rev *review.Review) error {
	if err := r.queries.InsertReview(ctx, tx, converter.ReviewToInsertParams(rev)); err != nil {
		return infra.WrapRepoErr("failed to create review", err)
	}
	return nil
}
