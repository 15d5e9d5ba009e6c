package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/SillyFizy/grow/internal/domain"
	"github.com/SillyFizy/grow/internal/validate"
)

// ListPlants returns one page of plants and the total number of matches.
// A missing limit uses the default page size; larger limits are clamped to
// the maximum.
func (s *Service) ListPlants(ctx context.Context, input PlantListInput) ([]domain.Plant, int, error) {
	input.CotyledonType = upper(input.CotyledonType)
	input.FlowerType = upper(input.FlowerType)
	if err := validate.Struct(input); err != nil {
		return nil, 0, err
	}

	plants, total, err := s.plants.List(ctx, input.filter(s.paging.DefaultPageSize, s.paging.MaxPageSize))
	if err != nil {
		return nil, 0, fmt.Errorf("list plants: %w", err)
	}
	return plants, total, nil
}

// GetPlant returns a plant with its family and flower parts. Details are
// served from the cache when present.
func (s *Service) GetPlant(ctx context.Context, id int64) (*domain.PlantDetail, error) {
	if d, ok, err := s.cache.GetDetail(ctx, id); err != nil {
		s.log.WarnContext(ctx, "cache read failed", slog.Int64("plant_id", id), slog.String("error", err.Error()))
	} else if ok {
		return d, nil
	}

	plant, err := s.plants.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get plant: %w", err)
	}

	detail := &domain.PlantDetail{Plant: *plant}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		f, err := s.families.GetByID(gctx, plant.FamilyID)
		if err != nil {
			return fmt.Errorf("get family: %w", err)
		}
		detail.Family = *f
		return nil
	})
	g.Go(func() error {
		set, err := s.plants.FlowerParts(gctx, id)
		if err != nil {
			return fmt.Errorf("get flower parts: %w", err)
		}
		detail.FlowerSet = set
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := s.cache.SetDetail(ctx, detail); err != nil {
		s.log.WarnContext(ctx, "cache write failed", slog.Int64("plant_id", id), slog.String("error", err.Error()))
	}
	return detail, nil
}

// PlantsByFamily returns every plant of an existing family.
func (s *Service) PlantsByFamily(ctx context.Context, familyID int64) ([]domain.Plant, error) {
	if plants, ok, err := s.cache.GetFamilyPlants(ctx, familyID); err != nil {
		s.log.WarnContext(ctx, "cache read failed", slog.Int64("family_id", familyID), slog.String("error", err.Error()))
	} else if ok {
		return plants, nil
	}

	if _, err := s.families.GetByID(ctx, familyID); err != nil {
		return nil, fmt.Errorf("get family: %w", err)
	}

	plants, err := s.plants.ListByFamily(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("list family plants: %w", err)
	}

	if err := s.cache.SetFamilyPlants(ctx, familyID, plants); err != nil {
		s.log.WarnContext(ctx, "cache write failed", slog.Int64("family_id", familyID), slog.String("error", err.Error()))
	}
	return plants, nil
}
