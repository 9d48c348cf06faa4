package request

import (
	"court-booking/internal/pkg/patch"
	"court-booking/internal/usecase/commands"
)

type CheckoutRequest struct {
	BookingID    string  `json:"booking_id" binding:"required"`
	ReturnOrigin *string `json:"return_origin"`
}

// ToInput falls back to the request Origin header when no origin is sent.
func (r *CheckoutRequest) ToInput(originHeader string) commands.CheckoutInput {
	return commands.CheckoutInput{
		BookingID:    r.BookingID,
		ReturnOrigin: patch.FirstNonBlank(patch.Coalesce(r.ReturnOrigin, ""), originHeader),
	}
}
