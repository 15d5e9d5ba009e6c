// Package family implements the PlantFamily repository using PostgreSQL.
package family

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"

	postgres "github.com/SillyFizy/grow/internal/adapter/postgres"
	"github.com/SillyFizy/grow/internal/domain"
)

// Repo provides plant family persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new family repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const familyColumns = `id, name_arabic, name_english, name_scientific, description_arabic, description_english, created_at`

var sortColumns = map[string]string{
	"id":              "id",
	"name_arabic":     "name_arabic",
	"name_english":    "name_english",
	"name_scientific": "name_scientific",
}

type familyRow struct {
	ID                 int64     `db:"id"`
	NameArabic         string    `db:"name_arabic"`
	NameEnglish        string    `db:"name_english"`
	NameScientific     string    `db:"name_scientific"`
	DescriptionArabic  string    `db:"description_arabic"`
	DescriptionEnglish string    `db:"description_english"`
	CreatedAt          time.Time `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a family by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.PlantFamily, error) {
	var row familyRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT `+familyColumns+` FROM plant_families WHERE id = $1`, id)
	if err != nil {
		return nil, mapError(err, id)
	}

	f := toDomain(row)
	return &f, nil
}

// GetByIDs returns the families with the given ids in no particular order.
// Missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]domain.PlantFamily, error) {
	if len(ids) == 0 {
		return []domain.PlantFamily{}, nil
	}

	var rows []familyRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT `+familyColumns+` FROM plant_families WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get plant_families by ids: %w", postgres.MapError(err, "plant_family", nil))
	}

	return toDomainList(rows), nil
}

// List returns families matching the filter. Search matches any of the
// three names case-insensitively.
func (r *Repo) List(ctx context.Context, filter domain.FamilyFilter) ([]domain.PlantFamily, error) {
	q := postgres.Builder().
		Select(familyColumns).
		From("plant_families").
		OrderBy(postgres.OrderBy(sortColumns, filter.SortBy, "name_scientific", filter.SortDesc), "id ASC")

	if filter.Search != nil && *filter.Search != "" {
		q = q.Where(squirrel.Or{
			postgres.ILike("name_arabic", *filter.Search),
			postgres.ILike("name_english", *filter.Search),
			postgres.ILike("name_scientific", *filter.Search),
		})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list plant_families: %w", err)
	}

	var rows []familyRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list plant_families: %w", postgres.MapError(err, "plant_family", nil))
	}

	return toDomainList(rows), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a family and returns it with its generated id.
func (r *Repo) Create(ctx context.Context, f *domain.PlantFamily) (*domain.PlantFamily, error) {
	var row familyRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`INSERT INTO plant_families (name_arabic, name_english, name_scientific, description_arabic, description_english)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+familyColumns,
		f.NameArabic, f.NameEnglish, f.NameScientific, f.DescriptionArabic, f.DescriptionEnglish,
	)
	if err != nil {
		return nil, postgres.MapError(err, "plant_family", nil)
	}

	created := toDomain(row)
	return &created, nil
}

// Delete removes a family. Returns domain.ErrConflict while any plant or
// submission still references it.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM plant_families WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("plant_family %d is still referenced: %w", id, domain.ErrConflict)
		}
		return postgres.MapError(err, "plant_family", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("plant_family %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func mapError(err error, id int64) error {
	if pgxscan.NotFound(err) {
		return fmt.Errorf("plant_family %d: %w", id, domain.ErrNotFound)
	}
	return postgres.MapError(err, "plant_family", id)
}

func toDomain(row familyRow) domain.PlantFamily {
	return domain.PlantFamily{
		ID:                 row.ID,
		NameArabic:         row.NameArabic,
		NameEnglish:        row.NameEnglish,
		NameScientific:     row.NameScientific,
		DescriptionArabic:  row.DescriptionArabic,
		DescriptionEnglish: row.DescriptionEnglish,
		CreatedAt:          row.CreatedAt,
	}
}

func toDomainList(rows []familyRow) []domain.PlantFamily {
	out := make([]domain.PlantFamily, len(rows))
	for i, row := range rows {
		out[i] = toDomain(row)
	}
	return out
}
