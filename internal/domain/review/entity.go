package review

import (
	"context"
	"errors"
	"time"

	"court-booking/internal/pkg/ident"
)

var ErrNotEligible = errors.New("you can only review courts you have booked")

type Review struct {
	id        string
	userID    string
	userName  string
	courtID   string
	rating    Rating
	comment   Comment
	createdAt time.Time
}

type Submission struct {
	UserID   string
	UserName string
	CourtID  string
	Rating   int
	Comment  string
}

// NewReview validates the rating before consulting eligibility, so an
// out-of-range rating is rejected the same way for every user.
func NewReview(ctx context.Context, services *Services, sub Submission) (*Review, error) {
	rating, err := NewRating(sub.Rating)
	if err != nil {
		return nil, err
	}
	comment, err := NewComment(sub.Comment)
	if err != nil {
		return nil, err
	}

	if err := services.EligibilityChecker.CanPostReview(ctx, EligibilityInput{
		UserID:  sub.UserID,
		CourtID: sub.CourtID,
	}); err != nil {
		return nil, err
	}

	return &Review{
		id:        ident.New(ident.PrefixReview),
		userID:    sub.UserID,
		userName:  sub.UserName,
		courtID:   sub.CourtID,
		rating:    rating,
		comment:   comment,
		createdAt: services.Clock.Now(),
	}, nil
}

func ReconstructReview(id, userID, userName, courtID string, rating Rating, comment Comment, createdAt time.Time) *Review {
	return &Review{
		id:        id,
		userID:    userID,
		userName:  userName,
		courtID:   courtID,
		rating:    rating,
		comment:   comment,
		createdAt: createdAt,
	}
}

func (r *Review) ID() string           { return r.id }
func (r *Review) UserID() string       { return r.userID }
func (r *Review) UserName() string     { return r.userName }
func (r *Review) CourtID() string      { return r.courtID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
