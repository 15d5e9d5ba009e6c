// Command cleanup-tokens deletes expired and revoked refresh tokens.
//
// Usage:
//
//	cleanup-tokens
package main

import (
	"context"
	"fmt"
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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("initialize", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer c.Close() //nolint:errcheck

	deleted, err := c.Auth.CleanupExpiredTokens(ctx)
	if err != nil {
		logger.Error("cleanup tokens", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("Deleted %d expired/revoked refresh tokens.\n", deleted)
}
