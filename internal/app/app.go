package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/SillyFizy/grow/internal/config"
	"github.com/SillyFizy/grow/internal/transport/middleware"
	"github.com/SillyFizy/grow/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects the
// adapters, serves the REST API and shuts down gracefully once ctx is
// canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			logger.Error("close container", slog.String("error", err.Error()))
		}
	}()

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, c, limiter, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

// NewHandler mounts the REST API on the container's services.
func NewHandler(cfg *config.Config, c *Container, limiter *middleware.RateLimiter, logger *slog.Logger) http.Handler {
	health := rest.NewHealthHandler(c.Pool, BuildVersion())
	if c.Cache != nil {
		health.WithOptional("redis", c.Cache)
	}

	handlers := rest.Handlers{
		Health:     health,
		Auth:       rest.NewAuthHandler(c.Auth, logger),
		Submission: rest.NewSubmissionHandler(c.Submission, cfg.Blob.MaxUploadBytes, logger),
		Admin:      rest.NewAdminHandler(c.Submission, c.Promotion, c.Catalog, logger),
		Catalog:    rest.NewCatalogHandler(c.Catalog, logger),
		Location:   rest.NewLocationHandler(c.Location, logger),
	}

	return rest.NewRouter(handlers, rest.RouterConfig{
		CORS:            cfg.CORS,
		Limits:          cfg.Limits,
		Loaders:         c.Loaders,
		MediaRoot:       cfg.Blob.RootDir,
		PermanentPrefix: cfg.Blob.PermanentPrefix,
	}, c.Auth, limiter, logger)
}
