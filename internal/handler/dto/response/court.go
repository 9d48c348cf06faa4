package response

import (
	"time"

	"court-booking/internal/domain/court"
	"court-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CourtResponse struct {
	ID            string    `json:"court_id"`
	NameAr        string    `json:"name_ar"`
	NameEn        string    `json:"name_en"`
	Type          string    `json:"type"`
	DescriptionAr string    `json:"description_ar"`
	DescriptionEn string    `json:"description_en"`
	ImageURL      *string   `json:"image_url,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromCourt(c *court.Court) *CourtResponse {
	return &CourtResponse{
		ID:            c.ID(),
		NameAr:        c.Name().Ar,
		NameEn:        c.Name().En,
		Type:          c.Category().String(),
		DescriptionAr: c.Description().Ar,
		DescriptionEn: c.Description().En,
		ImageURL:      c.ImageURL(),
		IsActive:      c.IsActive(),
		CreatedAt:     c.CreatedAt(),
	}
}

func FromCourtView(v *queries.CourtView) *CourtResponse {
	res := &CourtResponse{}
	_ = copier.Copy(res, v)
	return res
}

func FromCourtViews(vs []*queries.CourtView) []*CourtResponse {
	res := make([]*CourtResponse, 0, len(vs))
	_ = copier.Copy(&res, vs)
	return res
}
