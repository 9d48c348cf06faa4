package commands

import (
	"context"
	"log/slog"

	"court-booking/internal/domain/court"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"
)

//go:generate mockgen -source=court.go -destination=../../../tests/mock/commands/court.go -package=commandsmock

type CourtCommands interface {
	Create(ctx context.Context, actor shared.Actor, spec court.Spec) (*court.Court, error)
	// SeedCatalog inserts the default courts that are missing and reports how many were added.
	SeedCatalog(ctx context.Context) (int, error)
}

type courtCommandsImpl struct {
	uow   shared.UnitOfWork
	cache CatalogInvalidator
	clock clock.Clock
}

func NewCourtCommands(uow shared.UnitOfWork, cache CatalogInvalidator, clk clock.Clock) CourtCommands {
	return &courtCommandsImpl{
		uow:   uow,
		cache: cache,
		clock: clk,
	}
}

func (c *courtCommandsImpl) Create(ctx context.Context, actor shared.Actor, spec court.Spec) (*court.Court, error) {
	if !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}

	ct, err := court.NewCourt(spec, c.clock.Now())
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, cerr := tx.Courts().Create(ctx, tx.DB(), ct)
		return cerr
	})
	if err != nil {
		return nil, err
	}

	c.invalidate(ctx)
	slog.Info("court created", "court_id", ct.ID(), "type", ct.Category().String())
	return ct, nil
}

func (c *courtCommandsImpl) SeedCatalog(ctx context.Context) (int, error) {
	added := 0
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		added = 0
		for _, ct := range court.DefaultCatalog(c.clock.Now()) {
			created, cerr := tx.Courts().Create(ctx, tx.DB(), ct)
			if cerr != nil {
				return cerr
			}
			if created {
				added++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if added > 0 {
		c.invalidate(ctx)
	}
	return added, nil
}

// A stale cache only delays visibility until its TTL expires.
func (c *courtCommandsImpl) invalidate(ctx context.Context) {
	if err := c.cache.InvalidateCatalog(ctx); err != nil {
		slog.Warn("failed to invalidate court catalog cache", "error", err.Error())
	}
}
