package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SillyFizy/grow/internal/domain"
	"github.com/SillyFizy/grow/internal/validate"
	"github.com/SillyFizy/grow/pkg/ctxutil"
)

// Create records a sighting for the caller.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.PlantLocation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	if err := s.checkPlant(ctx, input.PlantID); err != nil {
		return nil, err
	}

	l, err := s.locations.Create(ctx, input.location(userID))
	if err != nil {
		return nil, fmt.Errorf("create location: %w", err)
	}

	s.log.InfoContext(ctx, "location recorded",
		slog.Int64("location_id", l.ID),
		slog.Int64("plant_id", l.PlantID),
		slog.String("user_id", userID.String()),
	)
	return l, nil
}

// List returns the caller's sightings.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.PlantLocation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	filter := domain.LocationFilter{UserID: userID, PlantID: input.PlantID, SortBy: "created_at", SortDesc: true}
	if input.Ordering != "" {
		field, desc := strings.CutPrefix(input.Ordering, "-")
		filter.SortBy, filter.SortDesc = field, desc
	}

	items, err := s.locations.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return items, nil
}

// Get returns one of the caller's sightings. Sightings of other users are
// reported as not found.
func (s *Service) Get(ctx context.Context, id int64) (*domain.PlantLocation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	l, err := s.locations.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get location: %w", err)
	}
	return l, nil
}

// Update changes one of the caller's sightings.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (*domain.PlantLocation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	l, err := s.locations.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get location: %w", err)
	}
	if input.PlantID != nil && *input.PlantID != l.PlantID {
		if err := s.checkPlant(ctx, *input.PlantID); err != nil {
			return nil, err
		}
	}

	input.apply(l)
	updated, err := s.locations.Update(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("update location: %w", err)
	}
	return updated, nil
}

// Delete removes one of the caller's sightings.
func (s *Service) Delete(ctx context.Context, id int64) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.locations.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete location: %w", err)
	}

	s.log.InfoContext(ctx, "location deleted", slog.Int64("location_id", id))
	return nil
}

func (s *Service) checkPlant(ctx context.Context, plantID int64) error {
	if _, err := s.plants.GetByID(ctx, plantID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("plant", "plant does not exist")
		}
		return fmt.Errorf("get plant: %w", err)
	}
	return nil
}
