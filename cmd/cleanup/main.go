// Command cleanup removes temporary submission images that no pending
// submission references and that are older than blob.orphan_age. It is
// intended to be invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/SillyFizy/grow/internal/app"
	"github.com/SillyFizy/grow/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	c, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("initialize", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer c.Close() //nolint:errcheck

	removed, err := c.Submission.CleanupOrphans(ctx)
	if err != nil {
		logger.Error("orphan cleanup failed",
			slog.String("error", err.Error()),
			slog.Duration("orphan_age", cfg.Blob.OrphanAge),
		)
		os.Exit(1)
	}

	logger.Info("orphan cleanup completed",
		slog.Int("removed", removed),
		slog.Duration("orphan_age", cfg.Blob.OrphanAge),
	)
}
