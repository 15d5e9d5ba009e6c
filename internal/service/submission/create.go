package submission

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/SillyFizy/grow/internal/adapter/blob"
	"github.com/SillyFizy/grow/internal/domain"
	"github.com/SillyFizy/grow/internal/flowerdetail"
	"github.com/SillyFizy/grow/pkg/ctxutil"
)

// Create stores a pending submission for the authenticated user. image is
// optional; when present it is kept in the temporary blob area until the
// submission is promoted.
func (s *Service) Create(ctx context.Context, input CreateInput, image io.Reader) (*domain.PlantSubmission, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.families.GetByID(ctx, input.FamilyID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("family_id", "unknown plant family")
		}
		return nil, fmt.Errorf("get family: %w", err)
	}

	details := input.details()
	flowerType := domain.FlowerType(input.FlowerType)

	if image != nil {
		path, err := s.blobs.SaveTemp(ctx, image)
		switch {
		case errors.Is(err, blob.ErrNotImage):
			return nil, domain.NewValidationError("image", "must be an image file")
		case errors.Is(err, domain.ErrValidation):
			return nil, domain.NewValidationError("image", "file is too large")
		case err != nil:
			return nil, fmt.Errorf("save image: %w", err)
		}
		details.ImagePath = path
	}

	doc, err := s.encodeDetails(details, flowerType)
	if err != nil {
		s.discardImage(ctx, details.ImagePath)
		return nil, err
	}

	created, err := s.submissions.Create(ctx, &domain.PlantSubmission{
		SubmitterID:       userID,
		NameArabic:        input.NameArabic,
		NameEnglish:       input.NameEnglish,
		NameScientific:    input.NameScientific,
		FamilyID:          input.FamilyID,
		Classification:    input.Classification,
		Description:       input.Description,
		SeedShapeArabic:   input.SeedShapeArabic,
		SeedShapeEnglish:  input.SeedShapeEnglish,
		CotyledonType:     domain.CotyledonType(input.CotyledonType),
		FlowerType:        flowerType,
		Status:            domain.SubmissionPending,
		AdditionalDetails: doc,
	})
	if err != nil {
		s.discardImage(ctx, details.ImagePath)
		return nil, fmt.Errorf("create submission: %w", err)
	}

	s.log.InfoContext(ctx, "submission created",
		slog.String("user_id", userID.String()),
		slog.Int64("submission_id", created.ID),
		slog.Bool("has_image", details.HasImage()),
	)

	return created, nil
}

// encodeDetails renders the document and reads it back, so a stored
// document always decodes for promotion.
func (s *Service) encodeDetails(details domain.SubmissionDetails, flowerType domain.FlowerType) ([]byte, error) {
	doc, err := flowerdetail.Encode(details)
	if err != nil {
		return nil, err
	}
	if _, err := flowerdetail.Decode(doc, flowerType); err != nil {
		return nil, fmt.Errorf("details do not round-trip: %w", err)
	}
	return doc, nil
}

func (s *Service) discardImage(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := s.blobs.Delete(context.WithoutCancel(ctx), path); err != nil {
		s.log.WarnContext(ctx, "discard temporary image", slog.String("path", path), slog.String("error", err.Error()))
	}
}
