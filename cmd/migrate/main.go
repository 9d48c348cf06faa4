package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// migrate applies the versioned files under migrations/ with the atlas CLI.
func main() {
	dir := flag.String("dir", "file://migrations", "migration directory URL")
	bin := flag.String("atlas", "atlas", "path to the atlas binary")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := run(ctx, logger, cfg.DB, *bin, *dir, *dryRun); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, db config.DBConfig, bin, dir string, dryRun bool) error {
	client, err := atlasexec.NewClient(".", bin)
	if err != nil {
		return errs.Wrap(err, "failed to initialize atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    db.BuildDSN(),
		DirURL: dir,
		DryRun: dryRun,
	})
	if err != nil {
		return errs.Wrap(err, "failed to apply migrations")
	}

	logger.Info("migrations applied",
		"current", res.Current,
		"target", res.Target,
		"applied", len(res.Applied),
		"dry_run", dryRun,
	)
	return nil
}
