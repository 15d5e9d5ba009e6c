package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SillyFizy/grow/internal/domain"
	"github.com/SillyFizy/grow/pkg/ctxutil"
)

// CreatePlant adds a plant with its flower parts in one transaction
// (admin only).
func (s *Service) CreatePlant(ctx context.Context, input CreatePlantInput) (*domain.PlantDetail, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	input.normalize()
	parts, err := input.parts()
	if err != nil {
		return nil, err
	}

	var detail domain.PlantDetail
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		family, err := s.families.GetByID(txCtx, input.FamilyID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewValidationError("family_id", "family does not exist")
			}
			return fmt.Errorf("get family: %w", err)
		}

		plant, err := s.plants.Create(txCtx, input.plant())
		if err != nil {
			return fmt.Errorf("create plant: %w", err)
		}

		set := domain.FlowerSet{}
		for _, part := range parts {
			partID, err := s.plants.CreateFlowerPart(txCtx, plant.ID, part)
			if err != nil {
				return fmt.Errorf("create %s: %w", part.Kind(), err)
			}
			set.Add(part, partID, plant.ID)
		}

		detail = domain.PlantDetail{Plant: *plant, Family: *family, FlowerSet: set}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.cache.InvalidateFamily(ctx, detail.Plant.FamilyID); err != nil {
		s.log.WarnContext(ctx, "cache invalidation failed", slog.Int64("family_id", detail.Plant.FamilyID), slog.String("error", err.Error()))
	}

	s.log.InfoContext(ctx, "plant created",
		slog.Int64("plant_id", detail.Plant.ID),
		slog.Int64("family_id", detail.Plant.FamilyID),
		slog.Int("flower_parts", len(parts)),
	)
	return &detail, nil
}

// DeletePlant removes a plant with its flower parts and sightings (admin
// only). The plant image is deleted after the row; a failure to delete it
// is logged.
func (s *Service) DeletePlant(ctx context.Context, id int64) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	plant, err := s.plants.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get plant: %w", err)
	}

	imagePath, err := s.plants.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete plant: %w", err)
	}

	if imagePath != "" {
		if err := s.blobs.Delete(ctx, imagePath); err != nil {
			s.log.WarnContext(ctx, "plant image not deleted",
				slog.Int64("plant_id", id),
				slog.String("path", imagePath),
				slog.String("error", err.Error()),
			)
		}
	}

	if err := s.cache.InvalidatePlant(ctx, id, plant.FamilyID); err != nil {
		s.log.WarnContext(ctx, "cache invalidation failed", slog.Int64("plant_id", id), slog.String("error", err.Error()))
	}

	s.log.InfoContext(ctx, "plant deleted", slog.Int64("plant_id", id))
	return nil
}

func upper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
