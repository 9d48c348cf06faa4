package response

import (
	"time"

	domreview "court-booking/internal/domain/review"
	"court-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ReviewResponse struct {
	ID        string    `json:"review_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	CourtID   string    `json:"court_id"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func FromReview(r *domreview.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        r.ID(),
		UserID:    r.UserID(),
		UserName:  r.UserName(),
		CourtID:   r.CourtID(),
		Rating:    int32(r.Rating().Value()),
		Comment:   r.Comment().String(),
		CreatedAt: r.CreatedAt(),
	}
}

func FromReviewViews(vs []*queries.ReviewView) []*ReviewResponse {
	res := make([]*ReviewResponse, 0, len(vs))
	_ = copier.Copy(&res, vs)
	return res
}
