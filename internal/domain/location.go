package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlantLocation is a georeferenced sighting recorded by a user.
type PlantLocation struct {
	ID        int64
	PlantID   int64
	UserID    uuid.UUID
	Latitude  float64
	Longitude float64
	Quantity  int
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Read-only projections filled by list queries.
	PlantName      string
	PlantImagePath string
}

// LocationTotals counts a set of sightings. Distinct is the number of
// users for a plant, or of plants for a user.
type LocationTotals struct {
	Locations   int
	PlantsFound int
	Distinct    int
}

// PlantLocationStats aggregates every sighting of one plant.
type PlantLocationStats struct {
	PlantID          int64
	TotalLocations   int
	TotalPlantsFound int
	UniqueSpotters   int
	Locations        []PlantLocation
}

// SpottedPlant is a plant ranked by how often a user recorded it.
type SpottedPlant struct {
	PlantID        int64
	NameArabic     string
	NameScientific string
	Sightings      int
	Quantity       int
}

// UserLocationStats aggregates the sightings of one user.
type UserLocationStats struct {
	TotalLocations   int
	TotalPlantsFound int
	UniquePlants     int
	Recent           []PlantLocation
	MostSpotted      []SpottedPlant
}
