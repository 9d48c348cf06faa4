package review

import (
	"context"

	"court-booking/internal/pkg/clock"
)

type Services struct {
	Clock              clock.Clock
	EligibilityChecker EligibilityChecker
}

type EligibilityInput struct {
	UserID  string
	CourtID string
}

// EligibilityChecker returns ErrNotEligible unless the user holds a
// confirmed and paid booking for the court.
type EligibilityChecker interface {
	CanPostReview(ctx context.Context, input EligibilityInput) error
}
