package request

import "court-booking/internal/usecase/commands"

// Rating bounds are enforced by the domain so that the rule holds for every caller.
type CreateReviewRequest struct {
	CourtID string `json:"court_id" binding:"required"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment" binding:"max=1000"`
}

func (r *CreateReviewRequest) ToInput() commands.CreateReviewInput {
	return commands.CreateReviewInput{
		CourtID: r.CourtID,
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}
