package request

import "court-booking/internal/domain/court"

type CreateCourtRequest struct {
	NameAr        string  `json:"name_ar" binding:"required"`
	NameEn        string  `json:"name_en" binding:"required"`
	Type          string  `json:"type" binding:"required"`
	DescriptionAr string  `json:"description_ar"`
	DescriptionEn string  `json:"description_en"`
	ImageURL      *string `json:"image_url"`
}

func (r *CreateCourtRequest) ToSpec() court.Spec {
	return court.Spec{
		Name:        court.LocalizedText{Ar: r.NameAr, En: r.NameEn},
		Description: court.LocalizedText{Ar: r.DescriptionAr, En: r.DescriptionEn},
		Category:    r.Type,
		ImageURL:    r.ImageURL,
	}
}
