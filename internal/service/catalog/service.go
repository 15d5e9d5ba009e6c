// Package catalog serves the public plant catalog and its administrative
// maintenance.
package catalog

import (
	"context"
	"log/slog"

	"github.com/SillyFizy/grow/internal/config"
	"github.com/SillyFizy/grow/internal/domain"
)

type familyRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.PlantFamily, error)
	List(ctx context.Context, filter domain.FamilyFilter) ([]domain.PlantFamily, error)
	Create(ctx context.Context, f *domain.PlantFamily) (*domain.PlantFamily, error)
	Delete(ctx context.Context, id int64) error
}

type plantRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Plant, error)
	List(ctx context.Context, filter domain.PlantFilter) ([]domain.Plant, int, error)
	ListByFamily(ctx context.Context, familyID int64) ([]domain.Plant, error)
	FlowerParts(ctx context.Context, plantID int64) (domain.FlowerSet, error)
	Create(ctx context.Context, p *domain.Plant) (*domain.Plant, error)
	CreateFlowerPart(ctx context.Context, plantID int64, part domain.FlowerPart) (int64, error)
	Delete(ctx context.Context, id int64) (string, error)
}

type blobStore interface {
	Delete(ctx context.Context, path string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type plantCache interface {
	GetDetail(ctx context.Context, plantID int64) (*domain.PlantDetail, bool, error)
	SetDetail(ctx context.Context, d *domain.PlantDetail) error
	GetFamilyPlants(ctx context.Context, familyID int64) ([]domain.Plant, bool, error)
	SetFamilyPlants(ctx context.Context, familyID int64, plants []domain.Plant) error
	InvalidatePlant(ctx context.Context, plantID, familyID int64) error
	InvalidateFamily(ctx context.Context, familyID int64) error
}

// Service reads and maintains families and plants.
type Service struct {
	families familyRepo
	plants   plantRepo
	blobs    blobStore
	tx       txManager
	cache    plantCache
	paging   config.CatalogConfig
	log      *slog.Logger
}

// NewService creates a new catalog service.
func NewService(
	log *slog.Logger,
	families familyRepo,
	plants plantRepo,
	blobs blobStore,
	tx txManager,
	cache plantCache,
	paging config.CatalogConfig,
) *Service {
	return &Service{
		families: families,
		plants:   plants,
		blobs:    blobs,
		tx:       tx,
		cache:    cache,
		paging:   paging,
		log:      log.With("service", "catalog"),
	}
}
