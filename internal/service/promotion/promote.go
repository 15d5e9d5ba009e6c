package promotion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SillyFizy/grow/internal/domain"
	"github.com/SillyFizy/grow/internal/flowerdetail"
)

var errImageMissing = errors.New("temporary image does not exist")

// movedImage remembers a blob move made inside a transaction so that it can
// be undone if the transaction does not commit.
type movedImage struct {
	from, to string
}

// Promote creates the plant described by a pending submission and marks the
// submission approved. It returns domain.ErrNotFound for an unknown id and
// domain.ErrInvalidState when the submission is no longer pending. Any
// other error leaves the submission pending with nothing written.
func (s *Service) Promote(ctx context.Context, id int64) (*domain.PromotionResult, error) {
	now := s.now()

	var (
		result   domain.PromotionResult
		familyID int64
		moved    *movedImage
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		sub, err := s.submissions.GetForUpdate(txCtx, id)
		if err != nil {
			return fmt.Errorf("load submission: %w", err)
		}
		if !sub.IsPending() {
			return fmt.Errorf("submission %d is %s: %w", id, sub.Status, domain.ErrInvalidState)
		}

		details, err := flowerdetail.Decode(sub.AdditionalDetails, sub.FlowerType)
		if err != nil {
			return fmt.Errorf("submission %d details: %w", id, err)
		}

		draft := sub.NewPlant()
		plant, err := s.plants.Create(txCtx, &draft)
		if err != nil {
			return fmt.Errorf("create plant: %w", err)
		}

		for _, part := range details.Parts() {
			if _, err := s.plants.CreateFlowerPart(txCtx, plant.ID, part); err != nil {
				return fmt.Errorf("create %s: %w", part.Kind(), err)
			}
		}

		var notes string
		if details.HasImage() {
			final, imgErr := s.moveImage(txCtx, details.ImagePath, plant.ID)
			if imgErr != nil {
				notes += domain.ImageErrorNote(details.ImagePath, imgErr)
				result.ImageError = imgErr.Error()
				s.log.WarnContext(ctx, "submission image not attached",
					slog.Int64("submission_id", id),
					slog.Int64("plant_id", plant.ID),
					slog.String("path", details.ImagePath),
					slog.String("error", imgErr.Error()),
				)
			} else {
				moved = &movedImage{from: details.ImagePath, to: final}
				if err := s.plants.SetImage(txCtx, plant.ID, final); err != nil {
					return fmt.Errorf("set plant image: %w", err)
				}
			}
		}
		notes += domain.ApprovalNote(plant.ID, now)

		if err := s.submissions.Transition(txCtx, id, domain.SubmissionApproved, notes); err != nil {
			return fmt.Errorf("approve submission: %w", err)
		}

		result.SubmissionID = id
		result.PlantID = plant.ID
		familyID = plant.FamilyID
		return nil
	})
	if err != nil {
		if moved != nil {
			s.restoreImage(ctx, moved)
		}
		return nil, err
	}

	s.log.InfoContext(ctx, "submission promoted",
		slog.Int64("submission_id", id),
		slog.Int64("plant_id", result.PlantID),
	)

	if err := s.cache.InvalidateFamily(ctx, familyID); err != nil {
		s.log.WarnContext(ctx, "cache invalidation failed", slog.Int64("family_id", familyID), slog.String("error", err.Error()))
	}
	s.events.PlantPromoted(ctx, id, result.PlantID, now)

	return &result, nil
}

// PromoteMany promotes each submission independently. Submissions that are
// no longer pending are skipped. A failure on one submission is recorded
// and the batch continues; only an unavailable store or a finished context
// stops it, in which case the partial result is returned with the error.
func (s *Service) PromoteMany(ctx context.Context, ids []int64) (*domain.BatchResult, error) {
	batch := &domain.BatchResult{}

	for _, id := range ids {
		res, err := s.Promote(ctx, id)
		switch {
		case err == nil:
			batch.Succeeded = append(batch.Succeeded, *res)
		case errors.Is(err, domain.ErrInvalidState):
			continue
		case errors.Is(err, domain.ErrUnavailable), ctx.Err() != nil:
			return batch, fmt.Errorf("promote submission %d: %w", id, err)
		default:
			batch.Failed = append(batch.Failed, domain.PromotionFailure{ID: id, Reason: err.Error()})
		}
	}

	s.log.InfoContext(ctx, "batch promotion finished",
		slog.Int("requested", len(ids)),
		slog.Int("succeeded", len(batch.Succeeded)),
		slog.Int("failed", len(batch.Failed)),
	)

	return batch, nil
}

// moveImage moves the temporary image into the permanent area and returns
// its new path.
func (s *Service) moveImage(ctx context.Context, tempPath string, plantID int64) (string, error) {
	ok, err := s.blobs.Exists(ctx, tempPath)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errImageMissing
	}
	return s.blobs.MovePermanent(ctx, tempPath, plantID)
}

// restoreImage puts a moved image back into the temporary area so that the
// still pending submission keeps pointing at an existing file.
func (s *Service) restoreImage(ctx context.Context, m *movedImage) {
	if err := s.blobs.Move(context.WithoutCancel(ctx), m.to, m.from); err != nil {
		s.log.ErrorContext(ctx, "restore submission image",
			slog.String("from", m.to),
			slog.String("to", m.from),
			slog.String("error", err.Error()),
		)
	}
}
