// Package plant implements the Plant and flower-part repositories using
// PostgreSQL. A plant owns at most one row in each flower-part table;
// deleting the plant cascades to them.
package plant

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/SillyFizy/grow/internal/adapter/postgres"
	"github.com/SillyFizy/grow/internal/domain"
)

// Repo provides plant persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new plant repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const plantColumns = `id, name_arabic, name_english, name_scientific, family_id, classification, description,
	seed_shape_arabic, seed_shape_english, cotyledon_type, flower_type, image_path, created_at, updated_at`

var sortColumns = map[string]string{
	"id":              "id",
	"name_arabic":     "name_arabic",
	"name_english":    "name_english",
	"name_scientific": "name_scientific",
	"created_at":      "created_at",
}

type plantRow struct {
	ID               int64     `db:"id"`
	NameArabic       string    `db:"name_arabic"`
	NameEnglish      string    `db:"name_english"`
	NameScientific   string    `db:"name_scientific"`
	FamilyID         int64     `db:"family_id"`
	Classification   string    `db:"classification"`
	Description      string    `db:"description"`
	SeedShapeArabic  string    `db:"seed_shape_arabic"`
	SeedShapeEnglish string    `db:"seed_shape_english"`
	CotyledonType    string    `db:"cotyledon_type"`
	FlowerType       string    `db:"flower_type"`
	ImagePath        string    `db:"image_path"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a plant by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Plant, error) {
	var row plantRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT `+plantColumns+` FROM plants WHERE id = $1`, id)
	if err != nil {
		return nil, mapError(err, id)
	}

	p := toDomain(row)
	return &p, nil
}

// List returns one page of plants matching filter and the total number of
// matches.
func (r *Repo) List(ctx context.Context, filter domain.PlantFilter) ([]domain.Plant, int, error) {
	where := filterConditions(filter)
	querier := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("plants").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count plants: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count plants: %w", postgres.MapError(err, "plant", nil))
	}

	q := postgres.Builder().
		Select(plantColumns).
		From("plants").
		Where(where).
		OrderBy(postgres.OrderBy(sortColumns, filter.SortBy, "id", filter.SortDesc), "id ASC")
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list plants: %w", err)
	}

	var rows []plantRow
	if err := pgxscan.Select(ctx, querier, &rows, sql, args...); err != nil {
		return nil, 0, fmt.Errorf("list plants: %w", postgres.MapError(err, "plant", nil))
	}

	return toDomainList(rows), total, nil
}

// ListByFamily returns every plant of a family ordered by id.
func (r *Repo) ListByFamily(ctx context.Context, familyID int64) ([]domain.Plant, error) {
	var rows []plantRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT `+plantColumns+` FROM plants WHERE family_id = $1 ORDER BY id`, familyID)
	if err != nil {
		return nil, fmt.Errorf("list plants by family: %w", postgres.MapError(err, "plant", nil))
	}

	return toDomainList(rows), nil
}

// filterConditions AND-combines the structured filters and the
// field-specific search terms. The general query term is OR-ed across the
// name fields and classification.
func filterConditions(f domain.PlantFilter) squirrel.And {
	where := squirrel.And{}

	if f.FamilyID != nil {
		where = append(where, squirrel.Eq{"family_id": *f.FamilyID})
	}
	if f.CotyledonType != nil {
		where = append(where, squirrel.Eq{"cotyledon_type": string(*f.CotyledonType)})
	}
	if f.FlowerType != nil {
		where = append(where, squirrel.Eq{"flower_type": string(*f.FlowerType)})
	}
	if f.Classification != nil {
		where = append(where, squirrel.Eq{"classification": *f.Classification})
	}

	if f.Query != nil && *f.Query != "" {
		where = append(where, squirrel.Or{
			postgres.ILike("name_arabic", *f.Query),
			postgres.ILike("name_english", *f.Query),
			postgres.ILike("name_scientific", *f.Query),
			postgres.ILike("classification", *f.Query),
		})
	}
	if f.Name != nil && *f.Name != "" {
		where = append(where, squirrel.Or{
			postgres.ILike("name_arabic", *f.Name),
			postgres.ILike("name_english", *f.Name),
			postgres.ILike("name_scientific", *f.Name),
		})
	}
	if f.ClassificationContains != nil && *f.ClassificationContains != "" {
		where = append(where, postgres.ILike("classification", *f.ClassificationContains))
	}

	return where
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a plant and returns it with its generated id and
// timestamps. The image path is stored as given.
func (r *Repo) Create(ctx context.Context, p *domain.Plant) (*domain.Plant, error) {
	var row plantRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`INSERT INTO plants (name_arabic, name_english, name_scientific, family_id, classification, description,
		                     seed_shape_arabic, seed_shape_english, cotyledon_type, flower_type, image_path)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING `+plantColumns,
		p.NameArabic, p.NameEnglish, p.NameScientific, p.FamilyID, p.Classification, p.Description,
		p.SeedShapeArabic, p.SeedShapeEnglish, string(p.CotyledonType), string(p.FlowerType), p.ImagePath,
	)
	if err != nil {
		return nil, postgres.MapError(err, "plant", nil)
	}

	created := toDomain(row)
	return &created, nil
}

// SetImage attaches a permanent image path to a plant.
func (r *Repo) SetImage(ctx context.Context, id int64, path string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE plants SET image_path = $2, updated_at = now() WHERE id = $1`, id, path)
	if err != nil {
		return postgres.MapError(err, "plant", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("plant %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a plant with its flower parts and sightings and returns
// the image path it held.
func (r *Repo) Delete(ctx context.Context, id int64) (string, error) {
	var imagePath string
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`DELETE FROM plants WHERE id = $1 RETURNING image_path`, id).Scan(&imagePath)
	if err != nil {
		return "", postgres.MapError(err, "plant", id)
	}
	return imagePath, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func mapError(err error, id int64) error {
	if pgxscan.NotFound(err) {
		return fmt.Errorf("plant %d: %w", id, domain.ErrNotFound)
	}
	return postgres.MapError(err, "plant", id)
}

func toDomain(row plantRow) domain.Plant {
	return domain.Plant{
		ID:               row.ID,
		NameArabic:       row.NameArabic,
		NameEnglish:      row.NameEnglish,
		NameScientific:   row.NameScientific,
		FamilyID:         row.FamilyID,
		Classification:   row.Classification,
		Description:      row.Description,
		SeedShapeArabic:  row.SeedShapeArabic,
		SeedShapeEnglish: row.SeedShapeEnglish,
		CotyledonType:    domain.CotyledonType(row.CotyledonType),
		FlowerType:       domain.FlowerType(row.FlowerType),
		ImagePath:        row.ImagePath,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

func toDomainList(rows []plantRow) []domain.Plant {
	out := make([]domain.Plant, len(rows))
	for i, row := range rows {
		out[i] = toDomain(row)
	}
	return out
}
