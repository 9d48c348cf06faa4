package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const courtColumns = `court_id, name_ar, name_en, type, description_ar, description_en, image_url, is_active, created_at`

func scanCourt(row interface{ Scan(dest ...any) error }) (Court, error) {
	var i Court
	err := row.Scan(
		&i.CourtID,
		&i.NameAr,
		&i.NameEn,
		&i.Type,
		&i.DescriptionAr,
		&i.DescriptionEn,
		&i.ImageUrl,
		&i.IsActive,
		&i.CreatedAt,
	)
	return i, err
}

const insertCourt = `-- name: InsertCourt :execrows
INSERT INTO courts (court_id, name_ar, name_en, type, description_ar, description_en, image_url, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (court_id) DO NOTHING
`

type InsertCourtParams struct {
	CourtID       string
	NameAr        string
	NameEn        string
	Type          string
	DescriptionAr string
	DescriptionEn string
	ImageUrl      pgtype.Text
	IsActive      bool
	CreatedAt     pgtype.Timestamptz
}

// InsertCourt reports 0 rows when the id already exists.
func (q *Queries) InsertCourt(ctx context.Context, db DBTX, arg InsertCourtParams) (int64, error) {
	tag, err := db.Exec(ctx, insertCourt,
		arg.CourtID,
		arg.NameAr,
		arg.NameEn,
		arg.Type,
		arg.DescriptionAr,
		arg.DescriptionEn,
		arg.ImageUrl,
		arg.IsActive,
		arg.CreatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getCourt = `-- name: GetCourt :one
SELECT ` + courtColumns + ` FROM courts WHERE court_id = $1
`

func (q *Queries) GetCourt(ctx context.Context, db DBTX, courtID string) (Court, error) {
	return scanCourt(db.QueryRow(ctx, getCourt, courtID))
}

const listActiveCourts = `-- name: ListActiveCourts :many
SELECT ` + courtColumns + ` FROM courts WHERE is_active ORDER BY created_at, court_id
`

func (q *Queries) ListActiveCourts(ctx context.Context, db DBTX) ([]Court, error) {
	rows, err := db.Query(ctx, listActiveCourts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Court
	for rows.Next() {
		i, err := scanCourt(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
