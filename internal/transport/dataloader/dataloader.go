// Package dataloader provides per-request DataLoaders that batch the
// family and flower-part lookups of plant lists into single SQL calls.
// DataLoaders call repositories directly, bypassing the service layer; the
// catalog is public so no authorization applies.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/SillyFizy/grow/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type familyRepo interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.PlantFamily, error)
}

type flowerPartRepo interface {
	FlowerPartsByPlantIDs(ctx context.Context, plantIDs []int64) (map[int64]domain.FlowerSet, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	Family     familyRepo
	FlowerPart flowerPartRepo
}

// ---------------------------------------------------------------------------
// Loaders holds all per-request DataLoader instances.
// ---------------------------------------------------------------------------

// Loaders contains the catalog DataLoaders. Created per-request via
// NewLoaders.
type Loaders struct {
	FamilyByID           *dataloader.Loader[int64, *domain.PlantFamily]
	FlowerPartsByPlantID *dataloader.Loader[int64, domain.FlowerSet]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		FamilyByID:           newLoader(newFamilyBatchFn(repos.Family)),
		FlowerPartsByPlantID: newLoader(newFlowerPartsBatchFn(repos.FlowerPart)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[int64, V]) *dataloader.Loader[int64, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[int64, V](wait),
		dataloader.WithBatchCapacity[int64, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
