package worker

import (
	"context"
	"log/slog"
	"time"

	"court-booking/internal/usecase/commands"
)

// SessionJanitor periodically removes expired login sessions.
type SessionJanitor struct {
	sessions commands.SessionCommands
	interval time.Duration
}

func NewSessionJanitor(sessions commands.SessionCommands, interval time.Duration) *SessionJanitor {
	return &SessionJanitor{sessions: sessions, interval: interval}
}

func (j *SessionJanitor) Start(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	slog.Info("Session janitor started", "interval", j.interval.String())

	for {
		select {
		case <-ctx.Done():
			slog.Info("Session janitor stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *SessionJanitor) sweep(ctx context.Context) {
	n, err := j.sessions.PurgeExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			slog.Error("Failed to purge expired sessions", "error", err.Error())
		}
		return
	}
	if n > 0 {
		slog.Info("Expired sessions purged", "count", n)
	}
}
