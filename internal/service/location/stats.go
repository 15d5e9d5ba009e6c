package location

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/SillyFizy/grow/internal/domain"
	"github.com/SillyFizy/grow/pkg/ctxutil"
)

// PlantStats aggregates every sighting of a plant. It is public.
func (s *Service) PlantStats(ctx context.Context, plantID int64) (*domain.PlantLocationStats, error) {
	if _, err := s.plants.GetByID(ctx, plantID); err != nil {
		return nil, fmt.Errorf("get plant: %w", err)
	}

	stats := &domain.PlantLocationStats{PlantID: plantID}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.locations.PlantTotals(gctx, plantID)
		if err != nil {
			return err
		}
		stats.TotalLocations, stats.TotalPlantsFound, stats.UniqueSpotters = t.Locations, t.PlantsFound, t.Distinct
		return nil
	})
	g.Go(func() error {
		items, err := s.locations.ListByPlant(gctx, plantID)
		if err != nil {
			return err
		}
		stats.Locations = items
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("plant location stats: %w", err)
	}

	return stats, nil
}

// UserStats aggregates the caller's sightings.
func (s *Service) UserStats(ctx context.Context) (*domain.UserLocationStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	stats := &domain.UserLocationStats{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.locations.UserTotals(gctx, userID)
		if err != nil {
			return err
		}
		stats.TotalLocations, stats.TotalPlantsFound, stats.UniquePlants = t.Locations, t.PlantsFound, t.Distinct
		return nil
	})
	g.Go(func() error {
		recent, err := s.locations.RecentByUser(gctx, userID, statsLimit)
		if err != nil {
			return err
		}
		stats.Recent = recent
		return nil
	})
	g.Go(func() error {
		spotted, err := s.locations.MostSpottedByUser(gctx, userID, statsLimit)
		if err != nil {
			return err
		}
		stats.MostSpotted = spotted
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("user location stats: %w", err)
	}

	return stats, nil
}
