package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertReview = `-- name: InsertReview :exec
INSERT INTO reviews (review_id, user_id, user_name, court_id, rating, comment, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

type InsertReviewParams struct {
	ReviewID  string
	UserID    string
	UserName  string
	CourtID   string
	Rating    int32
	Comment   string
	CreatedAt pgtype.Timestamptz
}

func (q *Queries) InsertReview(ctx context.Context, db DBTX, arg InsertReviewParams) error {
	_, err := db.Exec(ctx, insertReview,
		arg.ReviewID,
		arg.UserID,
		arg.UserName,
		arg.CourtID,
		arg.Rating,
		arg.Comment,
		arg.CreatedAt,
	)
	return err
}

const listReviewsByCourt = `-- name: ListReviewsByCourt :many
SELECT review_id, user_id, user_name, court_id, rating, comment, created_at
FROM reviews WHERE court_id = $1
ORDER BY created_at DESC, review_id DESC LIMIT $2
`

type ListReviewsByCourtParams struct {
	CourtID string
	Limit   int32
}

func (q *Queries) ListReviewsByCourt(ctx context.Context, db DBTX, arg ListReviewsByCourtParams) ([]Review, error) {
	rows, err := db.Query(ctx, listReviewsByCourt, arg.CourtID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Review
	for rows.Next() {
		var i Review
		if err := rows.Scan(
			&i.ReviewID,
			&i.UserID,
			&i.UserName,
			&i.CourtID,
			&i.Rating,
			&i.Comment,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
