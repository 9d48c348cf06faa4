package request

import "court-booking/internal/usecase/commands"

type CreateBookingRequest struct {
	CourtID  string `json:"court_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"time_slot" binding:"required"`
}

func (r *CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		CourtID:  r.CourtID,
		Date:     r.Date,
		TimeSlot: r.TimeSlot,
	}
}

type AvailabilityQuery struct {
	CourtID string `form:"court_id" binding:"required"`
	Date    string `form:"date" binding:"required"`
}
