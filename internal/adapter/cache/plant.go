// Package cache keeps read-mostly catalog views in Redis. Redis errors are
// returned to the caller, which decides whether to fall back to the
// database.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/SillyFizy/grow/internal/config"
	"github.com/SillyFizy/grow/internal/domain"
)

const (
	plantDetailPrefix = "grow:plant:detail:"
	familyPlantsKey   = "grow:family:plants:"
)

// Connect parses the configured URL and pings the server.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("cache: parse redis url: %w", err)
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cache: ping redis: %w", err)
	}
	return client, nil
}

// PlantCache caches plant details and per-family plant listings. A nil
// *PlantCache is a disabled cache: reads miss and writes are dropped.
type PlantCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewPlantCache creates a cache whose entries expire after ttl.
func NewPlantCache(rdb redis.Cmdable, ttl time.Duration) *PlantCache {
	return &PlantCache{rdb: rdb, ttl: ttl}
}

// Ping checks the Redis connection. A disabled cache is always healthy.
func (c *PlantCache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}

// GetDetail returns a cached plant detail. ok is false on a miss.
func (c *PlantCache) GetDetail(ctx context.Context, plantID int64) (detail *domain.PlantDetail, ok bool, err error) {
	var d domain.PlantDetail
	ok, err = c.get(ctx, detailKey(plantID), &d)
	if !ok || err != nil {
		return nil, false, err
	}
	return &d, true, nil
}

// SetDetail stores a plant detail.
func (c *PlantCache) SetDetail(ctx context.Context, d *domain.PlantDetail) error {
	return c.set(ctx, detailKey(d.Plant.ID), d)
}

// GetFamilyPlants returns the cached plant list of a family.
func (c *PlantCache) GetFamilyPlants(ctx context.Context, familyID int64) ([]domain.Plant, bool, error) {
	var plants []domain.Plant
	ok, err := c.get(ctx, familyKey(familyID), &plants)
	if !ok || err != nil {
		return nil, false, err
	}
	return plants, true, nil
}

// SetFamilyPlants stores the plant list of a family.
func (c *PlantCache) SetFamilyPlants(ctx context.Context, familyID int64, plants []domain.Plant) error {
	if plants == nil {
		plants = []domain.Plant{}
	}
	return c.set(ctx, familyKey(familyID), plants)
}

// InvalidatePlant drops the detail of plantID and the listing of the
// family it belongs to.
func (c *PlantCache) InvalidatePlant(ctx context.Context, plantID, familyID int64) error {
	if c == nil {
		return nil
	}
	if err := c.rdb.Del(ctx, detailKey(plantID), familyKey(familyID)).Err(); err != nil {
		return fmt.Errorf("cache: invalidate plant %d: %w", plantID, err)
	}
	return nil
}

// InvalidateFamily drops the listing of a family.
func (c *PlantCache) InvalidateFamily(ctx context.Context, familyID int64) error {
	if c == nil {
		return nil
	}
	if err := c.rdb.Del(ctx, familyKey(familyID)).Err(); err != nil {
		return fmt.Errorf("cache: invalidate family %d: %w", familyID, err)
	}
	return nil
}

func (c *PlantCache) get(ctx context.Context, key string, dst any) (bool, error) {
	if c == nil {
		return false, nil
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache: get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		// A stale encoding from an older release counts as a miss.
		_ = c.rdb.Del(ctx, key).Err()
		return false, nil
	}
	return true, nil
}

func (c *PlantCache) set(ctx context.Context, key string, v any) error {
	if c == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %s: %w", key, err)
	}
	return nil
}

func detailKey(plantID int64) string {
	return plantDetailPrefix + strconv.FormatInt(plantID, 10)
}

func familyKey(familyID int64) string {
	return familyPlantsKey + strconv.FormatInt(familyID, 10)
}
