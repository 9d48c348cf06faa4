package commands

import (
	"context"

	"court-booking/internal/pkg/clock"
	"court-booking/internal/usecase/shared"
)

//go:generate mockgen -source=session.go -destination=../../../tests/mock/commands/session.go -package=commandsmock

type SessionCommands interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

type sessionCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSessionCommands(uow shared.UnitOfWork, clk clock.Clock) SessionCommands {
	return &sessionCommandsImpl{uow: uow, clock: clk}
}

func (c *sessionCommandsImpl) PurgeExpired(ctx context.Context) (int64, error) {
	var purged int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Sessions().DeleteExpired(ctx, tx.DB(), c.clock.Now())
		purged = n
		return err
	})
	return purged, err
}
