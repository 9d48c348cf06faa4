//go:build unit || e2e

package builder

import (
	"time"

	"court-booking/internal/domain/court"
	reqdto "court-booking/internal/handler/dto/request"
	"court-booking/internal/infra/query"
	"court-booking/internal/pkg/ident"
	"court-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewBuilder struct {
	UserID   string
	UserName string
	CourtID  string
	Rating   int
	Comment  string
	Now      time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		UserID:   "user_0123456789ab",
		UserName: "Test Player",
		CourtID:  court.SeedPadelID,
		Rating:   5,
		Comment:  "Great lighting in the evening",
		Now:      time.Date(2025, 3, 2, 18, 0, 0, 0, time.UTC),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) BuildInfra() query.Review {
	return query.Review{
		ReviewID:  ident.New(ident.PrefixReview),
		UserID:    r.UserID,
		UserName:  r.UserName,
		CourtID:   r.CourtID,
		Rating:    int32(r.Rating),
		Comment:   r.Comment,
		CreatedAt: pgtype.Timestamptz{Time: r.Now, Valid: true},
	}
}

func (r *ReviewBuilder) BuildReadModel() *queries.ReviewView {
	return &queries.ReviewView{
		ID:        ident.New(ident.PrefixReview),
		UserID:    r.UserID,
		UserName:  r.UserName,
		CourtID:   r.CourtID,
		Rating:    int32(r.Rating),
		Comment:   r.Comment,
		CreatedAt: r.Now,
	}
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		CourtID: r.CourtID,
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}

func (r *ReviewBuilder) WithUserID(userID string) *ReviewBuilder {
	r.UserID = userID
	return r
}

func (r *ReviewBuilder) WithCourtID(courtID string) *ReviewBuilder {
	r.CourtID = courtID
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}
