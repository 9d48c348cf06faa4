//go:build unit

package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"court-booking/internal/domain/court"
	"court-booking/internal/infra/cache"
	"court-booking/internal/usecase/queries"
	"court-booking/tests/common/builder"
	cachemock "court-booking/tests/mock/cache"
	queriesmock "court-booking/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const ttl = 10 * time.Minute

func setup(t *testing.T) (*cache.CatalogCache, *cachemock.MockStore, *queriesmock.MockCourtReadStore) {
	ctrl := gomock.NewController(t)
	store := cachemock.NewMockStore(ctrl)
	next := queriesmock.NewMockCourtReadStore(ctrl)
	return cache.NewCatalogCache(next, store, ttl), store, next
}

func TestCatalogCache_ListActive(t *testing.T) {
	ctx := context.Background()
	courts := []*queries.CourtView{
		builder.NewCourtBuilder().BuildReadModel(),
		builder.NewCourtBuilder().AsFootball().BuildReadModel(),
	}
	raw, err := json.Marshal(courts)
	require.NoError(t, err)

	t.Run("hit skips the database", func(t *testing.T) {
		c, store, _ := setup(t)
		store.EXPECT().Get(gomock.Any(), "catalog:courts").Return(raw, nil)

		got, err := c.ListActive(ctx)
		require.NoError(t, err)
		if diff := cmp.Diff(courts, got); diff != "" {
			t.Errorf("ListActive() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("miss loads and fills", func(t *testing.T) {
		c, store, next := setup(t)
		store.EXPECT().Get(gomock.Any(), "catalog:courts").Return(nil, cache.ErrMiss)
		next.EXPECT().ListActive(gomock.Any()).Return(courts, nil)
		store.EXPECT().Set(gomock.Any(), "catalog:courts", raw, ttl).Return(nil)

		got, err := c.ListActive(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("broken cache falls through to the store", func(t *testing.T) {
		c, store, next := setup(t)
		store.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
		next.EXPECT().ListActive(gomock.Any()).Return(courts, nil)
		store.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

		got, err := c.ListActive(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("corrupt entry is ignored", func(t *testing.T) {
		c, store, next := setup(t)
		store.EXPECT().Get(gomock.Any(), gomock.Any()).Return([]byte("{not json"), nil)
		next.EXPECT().ListActive(gomock.Any()).Return(courts, nil)
		store.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := c.ListActive(ctx)
		require.NoError(t, err)
	})

	t.Run("database error is not cached", func(t *testing.T) {
		c, store, next := setup(t)
		boom := errors.New("boom")
		store.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, cache.ErrMiss)
		next.EXPECT().ListActive(gomock.Any()).Return(nil, boom)

		_, err := c.ListActive(ctx)
		require.ErrorIs(t, err, boom)
	})
}

func TestCatalogCache_FindByID(t *testing.T) {
	ctx := context.Background()
	view := builder.NewCourtBuilder().BuildReadModel()

	c, store, next := setup(t)
	store.EXPECT().Get(gomock.Any(), "catalog:court:"+court.SeedPadelID).Return(nil, cache.ErrMiss)
	next.EXPECT().FindByID(gomock.Any(), court.SeedPadelID).Return(view, nil)
	store.EXPECT().Set(gomock.Any(), "catalog:court:"+court.SeedPadelID, gomock.Any(), ttl).Return(nil)

	got, err := c.FindByID(ctx, court.SeedPadelID)
	require.NoError(t, err)
	assert.Equal(t, view, got)
}

func TestCatalogCache_InvalidateCatalog(t *testing.T) {
	c, store, _ := setup(t)
	store.EXPECT().Del(gomock.Any(), "catalog:courts").Return(nil)
	require.NoError(t, c.InvalidateCatalog(context.Background()))
}
