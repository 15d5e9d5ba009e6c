package submission

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/SillyFizy/grow/internal/adapter/blob"
	"github.com/SillyFizy/grow/internal/domain"
)

type submissionRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.PlantSubmission, error)
	List(ctx context.Context, filter domain.SubmissionFilter) ([]domain.PlantSubmission, int, error)
	PendingImagePaths(ctx context.Context) ([]string, error)
	Create(ctx context.Context, s *domain.PlantSubmission) (*domain.PlantSubmission, error)
}

type familyRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.PlantFamily, error)
}

type blobStore interface {
	SaveTemp(ctx context.Context, r io.Reader) (string, error)
	Delete(ctx context.Context, path string) error
	ListTemp(ctx context.Context) ([]blob.Object, error)
}

// Service handles submission intake, listing and temporary image upkeep.
type Service struct {
	submissions submissionRepo
	families    familyRepo
	blobs       blobStore
	orphanAge   time.Duration
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new submission service. Temporary images older than
// orphanAge that no pending submission references are removed by
// CleanupOrphans.
func NewService(
	log *slog.Logger,
	submissions submissionRepo,
	families familyRepo,
	blobs blobStore,
	orphanAge time.Duration,
) *Service {
	return &Service{
		submissions: submissions,
		families:    families,
		blobs:       blobs,
		orphanAge:   orphanAge,
		log:         log.With("service", "submission"),
		now:         time.Now,
	}
}
