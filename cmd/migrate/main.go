// Command migrate applies the embedded goose migrations.
//
// Usage:
//
//	migrate [-command up|down|status]
//
// The database DSN is read from the regular configuration.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/SillyFizy/grow/internal/app"
	"github.com/SillyFizy/grow/internal/config"
	"github.com/SillyFizy/grow/migrations"
)

func main() {
	command := flag.String("command", "up", "one of up, down, status")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		logger.Error("create migration provider", slog.String("error", err.Error()))
		os.Exit(1)
	}

	switch *command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			logger.Error("migrate up", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("migrations applied", slog.Int("count", len(results)))
	case "down":
		result, err := provider.Down(ctx)
		if err != nil {
			logger.Error("migrate down", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if result != nil {
			logger.Info("migration rolled back", slog.Int64("version", result.Source.Version))
		}
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			logger.Error("migration status", slog.String("error", err.Error()))
			os.Exit(1)
		}
		for _, s := range statuses {
			fmt.Printf("%-6d %-10s %s\n", s.Source.Version, s.State, s.Source.Path)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", *command)
		os.Exit(2)
	}
}
