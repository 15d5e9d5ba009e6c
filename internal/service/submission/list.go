package submission

import (
	"context"
	"fmt"

	"github.com/SillyFizy/grow/internal/domain"
	"github.com/SillyFizy/grow/internal/validate"
	"github.com/SillyFizy/grow/pkg/ctxutil"
)

// Mine returns the caller's submissions, newest first.
func (s *Service) Mine(ctx context.Context) ([]domain.PlantSubmission, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	items, _, err := s.submissions.List(ctx, domain.SubmissionFilter{SubmitterID: &userID})
	if err != nil {
		return nil, fmt.Errorf("list own submissions: %w", err)
	}
	return items, nil
}

// List returns the moderation queue (admin only).
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.PlantSubmission, int, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, 0, domain.ErrForbidden
	}
	if err := validate.Struct(input); err != nil {
		return nil, 0, err
	}

	filter := domain.SubmissionFilter{Limit: input.Limit, Offset: input.Offset}
	if input.Status != "" {
		status := domain.SubmissionStatus(input.Status)
		filter.Status = &status
	}
	if filter.Limit == 0 {
		filter.Limit = 50
	}

	items, total, err := s.submissions.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list submissions: %w", err)
	}
	return items, total, nil
}

// Get returns one submission (admin only).
func (s *Service) Get(ctx context.Context, id int64) (*domain.PlantSubmission, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	sub, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}
	return sub, nil
}
