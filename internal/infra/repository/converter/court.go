package converter

import (
	"court-booking/internal/domain/court"
	"court-booking/internal/infra/query"
	"court-booking/internal/pkg/pgconv"
)

func CourtToInsertParams(c *court.Court) query.InsertCourtParams {
	return query.InsertCourtParams{
		CourtID:       c.ID(),
		NameAr:        c.Name().Ar,
		NameEn:        c.Name().En,
		Type:          c.Category().String(),
		DescriptionAr: c.Description().Ar,
		DescriptionEn: c.Description().En,
		ImageUrl:      pgconv.StringPtrToPgtype(c.ImageURL()),
		IsActive:      c.IsActive(),
		CreatedAt:     pgconv.TimeToPgtype(c.CreatedAt()),
	}
}

func CourtFromRow(row query.Court) (*court.Court, error) {
	category, err := court.NewCategory(row.Type)
	if err != nil {
		return nil, err
	}
	return court.ReconstructCourt(
		row.CourtID,
		court.LocalizedText{Ar: row.NameAr, En: row.NameEn},
		court.LocalizedText{Ar: row.DescriptionAr, En: row.DescriptionEn},
		category,
		pgconv.StringPtrFromPgtype(row.ImageUrl),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
