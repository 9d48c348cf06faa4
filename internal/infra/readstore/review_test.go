//go:build unit

package readstore

import (
	"context"
	"testing"

	"court-booking/internal/infra"
	"court-booking/internal/infra/query"
	"court-booking/internal/usecase/queries"
	"court-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReviewReadQueries struct {
	mock.Mock
}

func (m *MockReviewReadQueries) ListReviewsByCourt(ctx context.Context, db query.DBTX, arg query.ListReviewsByCourtParams) ([]query.Review, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]query.Review), args.Error(1)
}

func TestReviewListByCourt(t *testing.T) {
	b := builder.NewReviewBuilder()
	rows := []query.Review{b.BuildInfra(), b.WithRating(3).WithComment("").BuildInfra()}

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockReviewReadQueries)
		mockQueries.On("ListReviewsByCourt", mock.Anything, mock.Anything, query.ListReviewsByCourtParams{
			CourtID: "court_padel_001",
			Limit:   100,
		}).Return(rows, nil)

		views, err := NewReviewReadStore(mockQueries, nil).ListByCourt(context.Background(), "court_padel_001", 100)
		require.NoError(t, err)

		want := []*queries.ReviewView{
			{UserID: b.UserID, UserName: b.UserName, CourtID: b.CourtID, Rating: 5, Comment: "Great lighting in the evening", CreatedAt: b.Now},
			{UserID: b.UserID, UserName: b.UserName, CourtID: b.CourtID, Rating: 3, Comment: "", CreatedAt: b.Now},
		}
		if diff := cmp.Diff(want, views, cmpopts.IgnoreFields(queries.ReviewView{}, "ID")); diff != "" {
			t.Errorf("reviews mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty court", func(t *testing.T) {
		mockQueries := new(MockReviewReadQueries)
		mockQueries.On("ListReviewsByCourt", mock.Anything, mock.Anything, mock.Anything).Return([]query.Review{}, nil)

		views, err := NewReviewReadStore(mockQueries, nil).ListByCourt(context.Background(), "court_football_001", 100)
		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockReviewReadQueries)
		mockQueries.On("ListReviewsByCourt", mock.Anything, mock.Anything, mock.Anything).Return([]query.Review(nil), assert.AnError)

		_, err := NewReviewReadStore(mockQueries, nil).ListByCourt(context.Background(), "court_padel_001", 100)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
