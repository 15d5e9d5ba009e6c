// Package promotion turns pending plant submissions into catalog entries.
//
// Each submission is promoted in its own transaction: the submission row is
// locked, the plant and its flower parts are inserted, the temporary image
// is moved into the permanent area and the submission is marked approved.
// Either the whole record set commits or none of it does. A failed image
// move is recorded in the admin notes and does not stop the promotion.
package promotion

import (
	"context"
	"log/slog"
	"time"

	"github.com/SillyFizy/grow/internal/domain"
)

type submissionRepo interface {
	GetForUpdate(ctx context.Context, id int64) (*domain.PlantSubmission, error)
	Transition(ctx context.Context, id int64, status domain.SubmissionStatus, note string) error
	RejectPending(ctx context.Context, ids []int64, note string) ([]int64, error)
}

type plantRepo interface {
	Create(ctx context.Context, p *domain.Plant) (*domain.Plant, error)
	CreateFlowerPart(ctx context.Context, plantID int64, part domain.FlowerPart) (int64, error)
	SetImage(ctx context.Context, id int64, path string) error
}

type blobStore interface {
	Exists(ctx context.Context, path string) (bool, error)
	MovePermanent(ctx context.Context, tempPath string, plantID int64) (string, error)
	Move(ctx context.Context, from, to string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventPublisher interface {
	PlantPromoted(ctx context.Context, submissionID, plantID int64, at time.Time)
	SubmissionsRejected(ctx context.Context, ids []int64, at time.Time)
}

type catalogCache interface {
	InvalidateFamily(ctx context.Context, familyID int64) error
}

// Service promotes and rejects plant submissions.
type Service struct {
	submissions submissionRepo
	plants      plantRepo
	blobs       blobStore
	tx          txManager
	events      eventPublisher
	cache       catalogCache
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new promotion service.
func NewService(
	log *slog.Logger,
	submissions submissionRepo,
	plants plantRepo,
	blobs blobStore,
	tx txManager,
	events eventPublisher,
	cache catalogCache,
) *Service {
	return &Service{
		submissions: submissions,
		plants:      plants,
		blobs:       blobs,
		tx:          tx,
		events:      events,
		cache:       cache,
		log:         log.With("service", "promotion"),
		now:         time.Now,
	}
}
