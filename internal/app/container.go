package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/SillyFizy/grow/internal/adapter/blob"
	"github.com/SillyFizy/grow/internal/adapter/cache"
	"github.com/SillyFizy/grow/internal/adapter/events"
	"github.com/SillyFizy/grow/internal/adapter/postgres"
	"github.com/SillyFizy/grow/internal/adapter/postgres/family"
	"github.com/SillyFizy/grow/internal/adapter/postgres/location"
	"github.com/SillyFizy/grow/internal/adapter/postgres/plant"
	"github.com/SillyFizy/grow/internal/adapter/postgres/submission"
	"github.com/SillyFizy/grow/internal/adapter/postgres/token"
	"github.com/SillyFizy/grow/internal/adapter/postgres/user"
	authpkg "github.com/SillyFizy/grow/internal/auth"
	"github.com/SillyFizy/grow/internal/config"
	authsvc "github.com/SillyFizy/grow/internal/service/auth"
	"github.com/SillyFizy/grow/internal/service/catalog"
	locationsvc "github.com/SillyFizy/grow/internal/service/location"
	"github.com/SillyFizy/grow/internal/service/promotion"
	submissionsvc "github.com/SillyFizy/grow/internal/service/submission"
	"github.com/SillyFizy/grow/internal/transport/dataloader"
)

// Container holds the connected adapters and the services built on them.
// The server and the maintenance commands share it.
type Container struct {
	Pool   *pgxpool.Pool
	Blobs  *blob.Store
	Cache  *cache.PlantCache
	Events *events.Publisher

	Auth       *authsvc.Service
	Catalog    *catalog.Service
	Submission *submissionsvc.Service
	Promotion  *promotion.Service
	Location   *locationsvc.Service

	Loaders *dataloader.Repos

	redis *redis.Client
	log   *slog.Logger
}

// NewContainer connects to PostgreSQL, and to Redis and Kafka when they are
// configured, then wires every service. Close releases the connections.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	c, err := Wire(ctx, pool, cfg, logger)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return c, nil
}

// Wire builds a Container on an already connected pool. Close closes the
// pool as well.
func Wire(ctx context.Context, pool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	blobs, err := blob.New(cfg.Blob)
	if err != nil {
		return nil, fmt.Errorf("open blob store: %w", err)
	}

	c := &Container{Pool: pool, Blobs: blobs, log: logger}

	if cfg.Redis.Enabled() {
		rdb, err := cache.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		c.redis = rdb
		c.Cache = cache.NewPlantCache(rdb, cfg.Redis.PlantTTL)
	} else {
		logger.Info("redis not configured, plant cache disabled")
	}

	c.Events = events.NewPublisher(cfg.Kafka, logger)
	if !c.Events.Enabled() {
		logger.Info("kafka not configured, moderation events disabled")
	}

	txm := postgres.NewTxManager(pool)
	familyRepo := family.New(pool)
	plantRepo := plant.New(pool)
	submissionRepo := submission.New(pool)
	locationRepo := location.New(pool)
	userRepo := user.New(pool)
	tokenRepo := token.New(pool)

	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	c.Auth = authsvc.NewService(logger, userRepo, tokenRepo, txm, jwtMgr, cfg.Auth)
	c.Catalog = catalog.NewService(logger, familyRepo, plantRepo, blobs, txm, c.Cache, cfg.Catalog)
	c.Submission = submissionsvc.NewService(logger, submissionRepo, familyRepo, blobs, cfg.Blob.OrphanAge)
	c.Promotion = promotion.NewService(logger, submissionRepo, plantRepo, blobs, txm, c.Events, c.Cache)
	c.Location = locationsvc.NewService(logger, locationRepo, plantRepo)

	c.Loaders = &dataloader.Repos{Family: familyRepo, FlowerPart: plantRepo}

	return c, nil
}

// Close flushes pending events and closes every connection.
func (c *Container) Close() error {
	var errs []error
	if err := c.Events.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close events: %w", err))
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	c.Pool.Close()
	return errors.Join(errs...)
}
