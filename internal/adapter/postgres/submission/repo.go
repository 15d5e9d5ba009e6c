// Package submission implements the PlantSubmission repository using
// PostgreSQL. Status transitions are conditional updates on
// status = 'pending', so at most one moderator action wins per submission.
package submission

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/SillyFizy/grow/internal/adapter/postgres"
	"github.com/SillyFizy/grow/internal/domain"
)

// Repo provides submission persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new submission repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const submissionColumns = `id, submitter_id, name_arabic, name_english, name_scientific, family_id, classification,
	description, seed_shape_arabic, seed_shape_english, cotyledon_type, flower_type, status, admin_notes,
	additional_details, submitted_at, updated_at`

type submissionRow struct {
	ID                int64     `db:"id"`
	SubmitterID       uuid.UUID `db:"submitter_id"`
	NameArabic        string    `db:"name_arabic"`
	NameEnglish       string    `db:"name_english"`
	NameScientific    string    `db:"name_scientific"`
	FamilyID          int64     `db:"family_id"`
	Classification    string    `db:"classification"`
	Description       string    `db:"description"`
	SeedShapeArabic   string    `db:"seed_shape_arabic"`
	SeedShapeEnglish  string    `db:"seed_shape_english"`
	CotyledonType     string    `db:"cotyledon_type"`
	FlowerType        string    `db:"flower_type"`
	Status            string    `db:"status"`
	AdminNotes        string    `db:"admin_notes"`
	AdditionalDetails []byte    `db:"additional_details"`
	SubmittedAt       time.Time `db:"submitted_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a submission by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.PlantSubmission, error) {
	return r.get(ctx, `SELECT `+submissionColumns+` FROM plant_submissions WHERE id = $1`, id)
}

// GetForUpdate re-reads a submission and locks its row until the
// surrounding transaction ends. A concurrent promotion of the same
// submission blocks here and then observes the committed status.
func (r *Repo) GetForUpdate(ctx context.Context, id int64) (*domain.PlantSubmission, error) {
	if !postgres.InTx(ctx) {
		return nil, fmt.Errorf("plant_submission %d: row lock requires a transaction", id)
	}
	return r.get(ctx, `SELECT `+submissionColumns+` FROM plant_submissions WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repo) get(ctx context.Context, sql string, id int64) (*domain.PlantSubmission, error) {
	var row submissionRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, id); err != nil {
		return nil, mapError(err, id)
	}

	s := toDomain(row)
	return &s, nil
}

// List returns submissions matching filter, newest first, with the total
// number of matches.
func (r *Repo) List(ctx context.Context, filter domain.SubmissionFilter) ([]domain.PlantSubmission, int, error) {
	where := squirrel.And{}
	if filter.Status != nil {
		where = append(where, squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.SubmitterID != nil {
		where = append(where, squirrel.Eq{"submitter_id": *filter.SubmitterID})
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("plant_submissions").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count plant_submissions: %w", err)
	}
	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count plant_submissions: %w", postgres.MapError(err, "plant_submission", nil))
	}

	q := postgres.Builder().
		Select(submissionColumns).
		From("plant_submissions").
		Where(where).
		OrderBy("submitted_at DESC", "id DESC")
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list plant_submissions: %w", err)
	}

	var rows []submissionRow
	if err := pgxscan.Select(ctx, querier, &rows, sql, args...); err != nil {
		return nil, 0, fmt.Errorf("list plant_submissions: %w", postgres.MapError(err, "plant_submission", nil))
	}

	out := make([]domain.PlantSubmission, len(rows))
	for i, row := range rows {
		out[i] = toDomain(row)
	}
	return out, total, nil
}

// PendingImagePaths returns the temporary image paths still referenced by
// pending submissions.
func (r *Repo) PendingImagePaths(ctx context.Context) ([]string, error) {
	var paths []string
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &paths,
		`SELECT additional_details->>'image_storage'
		   FROM plant_submissions
		  WHERE status = 'pending' AND additional_details->>'image_storage' IS NOT NULL`)
	if err != nil {
		return nil, fmt.Errorf("list pending image paths: %w", postgres.MapError(err, "plant_submission", nil))
	}
	if paths == nil {
		paths = []string{}
	}
	return paths, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a pending submission and returns it with its generated id.
func (r *Repo) Create(ctx context.Context, s *domain.PlantSubmission) (*domain.PlantSubmission, error) {
	details := []byte(s.AdditionalDetails)
	if len(details) == 0 {
		details = []byte(`{}`)
	}

	var row submissionRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`INSERT INTO plant_submissions
		   (submitter_id, name_arabic, name_english, name_scientific, family_id, classification, description,
		    seed_shape_arabic, seed_shape_english, cotyledon_type, flower_type, additional_details)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING `+submissionColumns,
		s.SubmitterID, s.NameArabic, s.NameEnglish, s.NameScientific, s.FamilyID, s.Classification, s.Description,
		s.SeedShapeArabic, s.SeedShapeEnglish, string(s.CotyledonType), string(s.FlowerType), details,
	)
	if err != nil {
		return nil, postgres.MapError(err, "plant_submission", nil)
	}

	created := toDomain(row)
	return &created, nil
}

// Transition moves a pending submission to status and appends note to its
// admin notes in one conditional update. Returns domain.ErrInvalidState if
// the submission is no longer pending and domain.ErrNotFound if it does not
// exist.
func (r *Repo) Transition(ctx context.Context, id int64, status domain.SubmissionStatus, note string) error {
	if !domain.SubmissionPending.CanTransitionTo(status) {
		return fmt.Errorf("plant_submission %d: transition to %s: %w", id, status, domain.ErrInvalidState)
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)
	tag, err := querier.Exec(ctx,
		`UPDATE plant_submissions
		    SET status = $2, admin_notes = admin_notes || $3, updated_at = now()
		  WHERE id = $1 AND status = 'pending'`,
		id, string(status), note)
	if err != nil {
		return postgres.MapError(err, "plant_submission", id)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := querier.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM plant_submissions WHERE id = $1)`, id).Scan(&exists); err != nil {
		return postgres.MapError(err, "plant_submission", id)
	}
	if !exists {
		return fmt.Errorf("plant_submission %d: %w", id, domain.ErrNotFound)
	}
	return fmt.Errorf("plant_submission %d: %w", id, domain.ErrInvalidState)
}

// RejectPending rejects every pending submission among ids, appending note
// to each, and returns the ids that were transitioned. Submissions in
// another status are left untouched.
func (r *Repo) RejectPending(ctx context.Context, ids []int64, note string) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	sql, args, err := postgres.Builder().
		Update("plant_submissions").
		Set("status", string(domain.SubmissionRejected)).
		Set("admin_notes", squirrel.Expr("admin_notes || ?", note)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": ids, "status": string(domain.SubmissionPending)}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build reject plant_submissions: %w", err)
	}

	var rejected []int64
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rejected, sql, args...); err != nil {
		return nil, fmt.Errorf("reject plant_submissions: %w", postgres.MapError(err, "plant_submission", nil))
	}

	return rejected, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func mapError(err error, id int64) error {
	if pgxscan.NotFound(err) {
		return fmt.Errorf("plant_submission %d: %w", id, domain.ErrNotFound)
	}
	return postgres.MapError(err, "plant_submission", id)
}

func toDomain(row submissionRow) domain.PlantSubmission {
	return domain.PlantSubmission{
		ID:                row.ID,
		SubmitterID:       row.SubmitterID,
		NameArabic:        row.NameArabic,
		NameEnglish:       row.NameEnglish,
		NameScientific:    row.NameScientific,
		FamilyID:          row.FamilyID,
		Classification:    row.Classification,
		Description:       row.Description,
		SeedShapeArabic:   row.SeedShapeArabic,
		SeedShapeEnglish:  row.SeedShapeEnglish,
		CotyledonType:     domain.CotyledonType(row.CotyledonType),
		FlowerType:        domain.FlowerType(row.FlowerType),
		Status:            domain.SubmissionStatus(row.Status),
		AdminNotes:        row.AdminNotes,
		AdditionalDetails: json.RawMessage(row.AdditionalDetails),
		SubmittedAt:       row.SubmittedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}
