// Package location records where users found plants and aggregates those
// sightings.
package location

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SillyFizy/grow/internal/domain"
)

// statsLimit bounds the recent and most spotted lists of UserStats.
const statsLimit = 5

type locationRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID, id int64) (*domain.PlantLocation, error)
	List(ctx context.Context, filter domain.LocationFilter) ([]domain.PlantLocation, error)
	ListByPlant(ctx context.Context, plantID int64) ([]domain.PlantLocation, error)
	Create(ctx context.Context, l *domain.PlantLocation) (*domain.PlantLocation, error)
	Update(ctx context.Context, l *domain.PlantLocation) (*domain.PlantLocation, error)
	Delete(ctx context.Context, userID uuid.UUID, id int64) error
	PlantTotals(ctx context.Context, plantID int64) (domain.LocationTotals, error)
	UserTotals(ctx context.Context, userID uuid.UUID) (domain.LocationTotals, error)
	RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.PlantLocation, error)
	MostSpottedByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SpottedPlant, error)
}

type plantRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Plant, error)
}

// Service manages plant sightings.
type Service struct {
	locations locationRepo
	plants    plantRepo
	log       *slog.Logger
}

// NewService creates a new location service.
func NewService(log *slog.Logger, locations locationRepo, plants plantRepo) *Service {
	return &Service{
		locations: locations,
		plants:    plants,
		log:       log.With("service", "location"),
	}
}
