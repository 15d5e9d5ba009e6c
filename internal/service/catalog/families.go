package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SillyFizy/grow/internal/domain"
	"github.com/SillyFizy/grow/internal/validate"
	"github.com/SillyFizy/grow/pkg/ctxutil"
)

// ListFamilies returns the families matching the search, ordered by
// scientific name unless another ordering is given.
func (s *Service) ListFamilies(ctx context.Context, input FamilyListInput) ([]domain.PlantFamily, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	filter := domain.FamilyFilter{Search: optional(input.Search)}
	filter.SortBy, filter.SortDesc = ordering(input.Ordering)

	families, err := s.families.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list families: %w", err)
	}
	return families, nil
}

// GetFamily returns one family.
func (s *Service) GetFamily(ctx context.Context, id int64) (*domain.PlantFamily, error) {
	f, err := s.families.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get family: %w", err)
	}
	return f, nil
}

// CreateFamily adds a family (admin only).
func (s *Service) CreateFamily(ctx context.Context, input CreateFamilyInput) (*domain.PlantFamily, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	input.normalize()
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	f, err := s.families.Create(ctx, &domain.PlantFamily{
		NameArabic:         input.NameArabic,
		NameEnglish:        input.NameEnglish,
		NameScientific:     input.NameScientific,
		DescriptionArabic:  input.DescriptionArabic,
		DescriptionEnglish: input.DescriptionEnglish,
	})
	if err != nil {
		return nil, fmt.Errorf("create family: %w", err)
	}

	s.log.InfoContext(ctx, "family created",
		slog.Int64("family_id", f.ID),
		slog.String("name_scientific", f.NameScientific),
	)
	return f, nil
}

// DeleteFamily removes a family (admin only). A family that still has
// plants or submissions is kept and domain.ErrConflict is returned.
func (s *Service) DeleteFamily(ctx context.Context, id int64) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	if err := s.families.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete family: %w", err)
	}

	if err := s.cache.InvalidateFamily(ctx, id); err != nil {
		s.log.WarnContext(ctx, "cache invalidation failed", slog.Int64("family_id", id), slog.String("error", err.Error()))
	}

	s.log.InfoContext(ctx, "family deleted", slog.Int64("family_id", id))
	return nil
}
