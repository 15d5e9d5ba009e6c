// Command grant-admin sets a user's role to admin by email address.
// It is used to bootstrap the first moderator.
//
// Usage:
//
//	grant-admin -email=user@example.com
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/SillyFizy/grow/internal/app"
	"github.com/SillyFizy/grow/internal/config"
	"github.com/SillyFizy/grow/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of user to grant admin")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: grant-admin -email=user@example.com")
		os.Exit(1)
	}

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

	user, err := c.Auth.GrantAdmin(ctx, *email)
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No user found with email %q.\n", *email)
		os.Exit(1)
	}
	if err != nil {
		logger.Error("grant admin", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("User %q (%s) is now an admin.\n", user.Username, user.Email)
}
