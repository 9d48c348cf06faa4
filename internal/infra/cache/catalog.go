package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"court-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/cache/catalog.go -package=cachemock

const (
	keyCourtList   = "catalog:courts"
	keyCourtPrefix = "catalog:court:"
)

var ErrMiss = errors.New("cache miss")

// Store is the subset of a key-value cache the catalog needs.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	return b, err
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

func (s *redisStore) Del(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// CatalogCache is a read-through cache in front of the court read store.
// Cache failures degrade to the underlying store; they are never returned.
type CatalogCache struct {
	next  queries.CourtReadStore
	store Store
	ttl   time.Duration
}

func NewCatalogCache(next queries.CourtReadStore, store Store, ttl time.Duration) *CatalogCache {
	return &CatalogCache{next: next, store: store, ttl: ttl}
}

func (c *CatalogCache) ListActive(ctx context.Context) ([]*queries.CourtView, error) {
	var cached []*queries.CourtView
	if c.load(ctx, keyCourtList, &cached) {
		return cached, nil
	}

	courts, err := c.next.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	c.save(ctx, keyCourtList, courts)
	return courts, nil
}

func (c *CatalogCache) FindByID(ctx context.Context, id string) (*queries.CourtView, error) {
	key := keyCourtPrefix + id
	var cached queries.CourtView
	if c.load(ctx, key, &cached) {
		return &cached, nil
	}

	court, err := c.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.save(ctx, key, court)
	return court, nil
}

// InvalidateCatalog drops the list entry; per-court entries never change
// after creation and expire on their own.
func (c *CatalogCache) InvalidateCatalog(ctx context.Context) error {
	return c.store.Del(ctx, keyCourtList)
}

func (c *CatalogCache) load(ctx context.Context, key string, dst any) bool {
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			slog.Warn("catalog cache read failed", "key", key, "error", err.Error())
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		slog.Warn("catalog cache entry corrupt", "key", key, "error", err.Error())
		return false
	}
	return true
}

func (c *CatalogCache) save(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.store.Set(ctx, key, raw, c.ttl); err != nil {
		slog.Warn("catalog cache write failed", "key", key, "error", err.Error())
	}
}

// NoopInvalidator is used when the catalog is served without a cache.
type NoopInvalidator struct{}

func (NoopInvalidator) InvalidateCatalog(context.Context) error { return nil }
