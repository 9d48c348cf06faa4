package repository

import (
	"context"

	"court-booking/internal/domain/user"
	"court-booking/internal/infra"
	"court-booking/internal/infra/query"
	"court-booking/internal/infra/repository/converter"
	"court-booking/internal/pkg/pgconv"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db query.DBTX, arg query.CreateUserParams) error
	GetUserByID(ctx context.Context, db query.DBTX, userID string) (query.User, error)
	GetUserByEmail(ctx context.Context, db query.DBTX, email string) (query.User, error)
	UpdateUserProfile(ctx context.Context, db query.DBTX, arg query.UpdateUserProfileParams) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

func (r *UserRepository) Create(ctx context.Context, tx query.DBTX, u *user.User) error {
	if err := r.queries.CreateUser(ctx, tx, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, tx query.DBTX, id string) (*user.User, error) {
	row, err := r.queries.GetUserByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	u, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert user row", err, infra.KindDBFailure)
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, tx query.DBTX, email string) (*user.User, error) {
	row, err := r.queries.GetUserByEmail(ctx, tx, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	u, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert user row", err, infra.KindDBFailure)
	}
	return u, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, tx query.DBTX, userID, name string, picture *string) error {
	n, err := r.queries.UpdateUserProfile(ctx, tx, query.UpdateUserProfileParams{
		UserID:  userID,
		Name:    name,
		Picture: pgconv.StringPtrToPgtype(picture),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user profile", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
