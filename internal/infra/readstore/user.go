package readstore

import (
	"context"

	"court-booking/internal/infra"
	"court-booking/internal/infra/query"
	"court-booking/internal/pkg/pgconv"
	"court-booking/internal/usecase/queries"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db query.DBTX, userID string) (query.User, error)
	ListUsers(ctx context.Context, db query.DBTX, limit int32) ([]query.User, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      query.DBTX
}

func NewUserReadStore(queries UserReadQueries, db query.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id string) (*queries.UserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUserView(row), nil
}

func (r *UserReadStore) List(ctx context.Context, limit int32) ([]*queries.UserView, error) {
	rows, err := r.queries.ListUsers(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	views := make([]*queries.UserView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toUserView(row))
	}
	return views, nil
}

func toUserView(row query.User) *queries.UserView {
	return &queries.UserView{
		ID:        row.UserID,
		Email:     row.Email,
		Phone:     row.Phone,
		Name:      row.Name,
		Picture:   pgconv.StringPtrFromPgtype(row.Picture),
		Language:  row.Language,
		Role:      row.Role,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
