package queries

import (
	"context"

	"court-booking/internal/infra"
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user.go -package=queriesmock

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID string) (*UserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id string) (*UserView, error)
	List(ctx context.Context, limit int32) ([]*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID string) (*UserView, error) {
	user, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
