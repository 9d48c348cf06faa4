//go:build unit || e2e

package builder

import (
	"time"

	"court-booking/internal/domain/court"
	reqdto "court-booking/internal/handler/dto/request"
	"court-booking/internal/infra/query"
	"court-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type CourtBuilder struct {
	ID            string
	NameAr        string
	NameEn        string
	Type          string
	DescriptionAr string
	DescriptionEn string
	ImageURL      *string
	IsActive      bool
	Now           time.Time
}

func NewCourtBuilder() *CourtBuilder {
	return &CourtBuilder{
		ID:            court.SeedPadelID,
		NameAr:        "ملعب البادل",
		NameEn:        "Padel Court",
		Type:          "padel",
		DescriptionAr: "ملعب بادل",
		DescriptionEn: "Padel court",
		IsActive:      true,
		Now:           time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *CourtBuilder) With(mutate func(*CourtBuilder)) *CourtBuilder {
	mutate(b)
	return b
}

func (b *CourtBuilder) BuildSpec() court.Spec {
	return court.Spec{
		Name:        court.LocalizedText{Ar: b.NameAr, En: b.NameEn},
		Description: court.LocalizedText{Ar: b.DescriptionAr, En: b.DescriptionEn},
		Category:    b.Type,
		ImageURL:    b.ImageURL,
	}
}

func (b *CourtBuilder) BuildDomain() (*court.Court, error) {
	return court.NewCourt(b.BuildSpec(), b.Now)
}

func (b *CourtBuilder) BuildInfra() query.Court {
	row := query.Court{
		CourtID:       b.ID,
		NameAr:        b.NameAr,
		NameEn:        b.NameEn,
		Type:          b.Type,
		DescriptionAr: b.DescriptionAr,
		DescriptionEn: b.DescriptionEn,
		IsActive:      b.IsActive,
		CreatedAt:     pgtype.Timestamptz{Time: b.Now, Valid: true},
	}
	if b.ImageURL != nil {
		row.ImageUrl = pgtype.Text{String: *b.ImageURL, Valid: true}
	}
	return row
}

func (b *CourtBuilder) BuildReadModel() *queries.CourtView {
	return &queries.CourtView{
		ID:            b.ID,
		NameAr:        b.NameAr,
		NameEn:        b.NameEn,
		Type:          b.Type,
		DescriptionAr: b.DescriptionAr,
		DescriptionEn: b.DescriptionEn,
		ImageURL:      b.ImageURL,
		IsActive:      b.IsActive,
		CreatedAt:     b.Now,
	}
}

func (b *CourtBuilder) BuildCreateRequestDTO() reqdto.CreateCourtRequest {
	return reqdto.CreateCourtRequest{
		NameAr:        b.NameAr,
		NameEn:        b.NameEn,
		Type:          b.Type,
		DescriptionAr: b.DescriptionAr,
		DescriptionEn: b.DescriptionEn,
		ImageURL:      b.ImageURL,
	}
}

func (b *CourtBuilder) WithID(id string) *CourtBuilder {
	b.ID = id
	return b
}

func (b *CourtBuilder) WithType(t string) *CourtBuilder {
	b.Type = t
	return b
}

func (b *CourtBuilder) WithNames(ar, en string) *CourtBuilder {
	b.NameAr = ar
	b.NameEn = en
	return b
}

func (b *CourtBuilder) WithImageURL(url string) *CourtBuilder {
	b.ImageURL = &url
	return b
}

func (b *CourtBuilder) AsFootball() *CourtBuilder {
	b.ID = court.SeedFootballID
	b.Type = "football"
	b.NameAr = "ملعب كرة القدم"
	b.NameEn = "Football Court"
	return b
}
