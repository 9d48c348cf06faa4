//go:build unit

package readstore

import (
	"context"
	"testing"

	"court-booking/internal/infra"
	"court-booking/internal/infra/query"
	"court-booking/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) GetUserByID(ctx context.Context, db query.DBTX, userID string) (query.User, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).(query.User), args.Error(1)
}

func (m *MockUserReadQueries) ListUsers(ctx context.Context, db query.DBTX, limit int32) ([]query.User, error) {
	args := m.Called(ctx, db, limit)
	return args.Get(0).([]query.User), args.Error(1)
}

func TestUserFindByID(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()

	tests := []struct {
		name       string
		userID     string
		mockReturn query.User
		mockError  error
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success",
			userID:     testUser.UserID,
			mockReturn: testUser,
		},
		{
			name:       "user not found",
			userID:     "user_missing0000",
			mockReturn: query.User{},
			mockError:  pgx.ErrNoRows,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			userID:     testUser.UserID,
			mockReturn: query.User{},
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("GetUserByID", mock.Anything, mock.Anything, tt.userID).Return(tt.mockReturn, tt.mockError)

			view, err := NewUserReadStore(mockQueries, nil).FindByID(context.Background(), tt.userID)

			if tt.wantKind != "" {
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, testUser.Email, view.Email)
				assert.Equal(t, testUser.Role, view.Role)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestUserList(t *testing.T) {
	rows := []query.User{
		builder.NewUserBuilder().WithEmail("a@example.com").BuildInfra(),
		builder.NewUserBuilder().WithEmail("b@example.com").AsExternal().BuildInfra(),
	}
	mockQueries := new(MockUserReadQueries)
	mockQueries.On("ListUsers", mock.Anything, mock.Anything, int32(100)).Return(rows, nil)

	views, err := NewUserReadStore(mockQueries, nil).List(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "a@example.com", views[0].Email)
	assert.Equal(t, "b@example.com", views[1].Email)
}
