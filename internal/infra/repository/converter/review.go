package converter

import (
	"court-booking/internal/domain/review"
	"court-booking/internal/infra/query"
	"court-booking/internal/pkg/pgconv"
)

func ReviewToInsertParams(r *review.Review) query.InsertReviewParams {
	return query.InsertReviewParams{
		ReviewID:  r.ID(),
		UserID:    r.UserID(),
		UserName:  r.UserName(),
		CourtID:   r.CourtID(),
		Rating:    int32(r.Rating().Value()),
		Comment:   r.Comment().String(),
		CreatedAt: pgconv.TimeToPgtype(r.CreatedAt()),
	}
}
