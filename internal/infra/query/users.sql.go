package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `user_id, email, phone, name, picture, language, role, password_hash, created_at`

func scanUser(row interface{ Scan(dest ...any) error }) (User, error) {
	var i User
	err := row.Scan(
		&i.UserID,
		&i.Email,
		&i.Phone,
		&i.Name,
		&i.Picture,
		&i.Language,
		&i.Role,
		&i.PasswordHash,
		&i.CreatedAt,
	)
	return i, err
}

const createUser = `-- name: CreateUser :exec
INSERT INTO users (user_id, email, phone, name, picture, language, role, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

type CreateUserParams struct {
	UserID       string
	Email        string
	Phone        string
	Name         string
	Picture      pgtype.Text
	Language     string
	Role         string
	PasswordHash pgtype.Text
	CreatedAt    pgtype.Timestamptz
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) error {
	_, err := db.Exec(ctx, createUser,
		arg.UserID,
		arg.Email,
		arg.Phone,
		arg.Name,
		arg.Picture,
		arg.Language,
		arg.Role,
		arg.PasswordHash,
		arg.CreatedAt,
	)
	return err
}

const getUserByID = `-- name: GetUserByID :one
SELECT ` + userColumns + ` FROM users WHERE user_id = $1
`

func (q *Queries) GetUserByID(ctx context.Context, db DBTX, userID string) (User, error) {
	return scanUser(db.QueryRow(ctx, getUserByID, userID))
}

const getUserByEmail = `-- name: GetUserByEmail :one
SELECT ` + userColumns + ` FROM users WHERE email = $1
`

func (q *Queries) GetUserByEmail(ctx context.Context, db DBTX, email string) (User, error) {
	return scanUser(db.QueryRow(ctx, getUserByEmail, email))
}

const updateUserProfile = `-- name: UpdateUserProfile :execrows
UPDATE users SET name = $2, picture = $3 WHERE user_id = $1
`

type UpdateUserProfileParams struct {
	UserID  string
	Name    string
	Picture pgtype.Text
}

func (q *Queries) UpdateUserProfile(ctx context.Context, db DBTX, arg UpdateUserProfileParams) (int64, error) {
	tag, err := db.Exec(ctx, updateUserProfile, arg.UserID, arg.Name, arg.Picture)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listUsers = `-- name: ListUsers :many
SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1
`

func (q *Queries) ListUsers(ctx context.Context, db DBTX, limit int32) ([]User, error) {
	rows, err := db.Query(ctx, listUsers, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []User
	for rows.Next() {
		i, err := scanUser(rows)
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
