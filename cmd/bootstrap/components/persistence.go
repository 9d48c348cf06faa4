package components

import (
	"court-booking/internal/infra/cache"
	"court-booking/internal/infra/query"
	"court-booking/internal/infra/readstore"
	"court-booking/internal/infra/uow"
	"court-booking/internal/pkg/config"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Court (behind the catalog cache)
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CourtReadQueries)),
		),
		readstore.NewCourtReadStore,
		NewCatalogReadStore,
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(queries.SlotReadStore)),
		),
		// Review
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReviewReadQueries)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Stats
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.StatsReadQueries)),
		),
		fx.Annotate(
			readstore.NewStatsReadStore,
			fx.As(new(queries.StatsReadStore)),
		),
		// Health
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(queries.Pinger)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}

// NewCatalogReadStore puts the redis cache in front of the court read store
// when a client is configured.
func NewCatalogReadStore(base *readstore.CourtReadStore, client *redis.Client, cfg config.Config) (queries.CourtReadStore, commands.CatalogInvalidator) {
	if client == nil {
		return base, cache.NoopInvalidator{}
	}
	cached := cache.NewCatalogCache(base, cache.NewRedisStore(client), cfg.Redis.CacheTTL)
	return cached, cached
}
