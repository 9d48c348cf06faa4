package commands

import (
	"context"

	domreview "court-booking/internal/domain/review"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"
)

//go:generate mockgen -source=review.go -destination=../../../tests/mock/commands/review.go -package=commandsmock

type CreateReviewInput struct {
	CourtID string
	Rating  int
	Comment string
}

type ReviewCommands interface {
	Create(ctx context.Context, actor shared.Actor, in CreateReviewInput) (*domreview.Review, error)
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

func (uc *reviewUseCaseImpl) Create(ctx context.Context, actor shared.Actor, in CreateReviewInput) (*domreview.Review, error) {
	author, err := uc.uow.CommandReads().UserByID(ctx, actor.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUnauthenticated
		}
		return nil, err
	}

	services := &domreview.Services{
		Clock:              uc.clock,
		EligibilityChecker: uc,
	}
	rev, err := domreview.NewReview(ctx, services, domreview.Submission{
		UserID:   author.ID(),
		UserName: author.Name(),
		CourtID:  in.CourtID,
		Rating:   in.Rating,
		Comment:  in.Comment,
	})
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reviews().Create(ctx, tx.DB(), rev)
	})
	if err != nil {
		return nil, err
	}
	return rev, nil
}

// CanPostReview implements domreview.EligibilityChecker
func (uc *reviewUseCaseImpl) CanPostReview(ctx context.Context, input domreview.EligibilityInput) error {
	ok, err := uc.uow.CommandReads().HasPaidBookingForCourt(ctx, input.UserID, input.CourtID)
	if err != nil {
		return err
	}
	if !ok {
		return domreview.ErrNotEligible
	}
	return nil
}
