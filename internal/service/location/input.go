package location

import (
	"strings"

	"github.com/google/uuid"

	"github.com/SillyFizy/grow/internal/domain"
)

// CreateInput is a new sighting. Quantity defaults to one.
type CreateInput struct {
	PlantID   int64    `json:"plant"     validate:"required,gt=0"`
	Latitude  *float64 `json:"latitude"  validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	Quantity  *int     `json:"quantity"  validate:"omitempty,gte=1"`
	Notes     string   `json:"notes"     validate:"max=2000"`
}

func (i CreateInput) location(userID uuid.UUID) *domain.PlantLocation {
	l := &domain.PlantLocation{
		PlantID:   i.PlantID,
		UserID:    userID,
		Latitude:  *i.Latitude,
		Longitude: *i.Longitude,
		Quantity:  1,
		Notes:     strings.TrimSpace(i.Notes),
	}
	if i.Quantity != nil {
		l.Quantity = *i.Quantity
	}
	return l
}

// UpdateInput changes the fields that are set.
type UpdateInput struct {
	PlantID   *int64   `json:"plant"     validate:"omitempty,gt=0"`
	Latitude  *float64 `json:"latitude"  validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Quantity  *int     `json:"quantity"  validate:"omitempty,gte=1"`
	Notes     *string  `json:"notes"     validate:"omitempty,max=2000"`
}

func (i UpdateInput) apply(l *domain.PlantLocation) {
	if i.PlantID != nil {
		l.PlantID = *i.PlantID
	}
	if i.Latitude != nil {
		l.Latitude = *i.Latitude
	}
	if i.Longitude != nil {
		l.Longitude = *i.Longitude
	}
	if i.Quantity != nil {
		l.Quantity = *i.Quantity
	}
	if i.Notes != nil {
		l.Notes = strings.TrimSpace(*i.Notes)
	}
}

// ListInput filters the caller's sightings. Ordering defaults to newest
// first.
type ListInput struct {
	PlantID  *int64 `json:"plant"    validate:"omitempty,gt=0"`
	Ordering string `json:"ordering" validate:"omitempty,oneof=created_at -created_at quantity -quantity"`
}
