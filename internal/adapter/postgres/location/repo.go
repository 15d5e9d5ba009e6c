// Package location implements the PlantLocation repository using
// PostgreSQL. Every user-scoped query filters on user_id so another user's
// sighting is indistinguishable from a missing one.
package location

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/SillyFizy/grow/internal/adapter/postgres"
	"github.com/SillyFizy/grow/internal/domain"
)

// Repo provides sighting persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new location repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const (
	locationColumns = `l.id, l.plant_id, l.user_id, l.latitude, l.longitude, l.quantity, l.notes,
	l.created_at, l.updated_at, p.name_arabic AS plant_name, p.image_path AS plant_image_path`
	locationFrom   = `plant_locations l JOIN plants p ON p.id = l.plant_id`
	selectLocation = `SELECT ` + locationColumns + ` FROM ` + locationFrom
)

var sortColumns = map[string]string{
	"created_at": "l.created_at",
	"quantity":   "l.quantity",
	"id":         "l.id",
}

type locationRow struct {
	ID             int64     `db:"id"`
	PlantID        int64     `db:"plant_id"`
	UserID         uuid.UUID `db:"user_id"`
	Latitude       float64   `db:"latitude"`
	Longitude      float64   `db:"longitude"`
	Quantity       int       `db:"quantity"`
	Notes          string    `db:"notes"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
	PlantName      string    `db:"plant_name"`
	PlantImagePath string    `db:"plant_image_path"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a sighting owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID uuid.UUID, id int64) (*domain.PlantLocation, error) {
	var row locationRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		selectLocation+` WHERE l.id = $1 AND l.user_id = $2`, id, userID)
	if err != nil {
		return nil, mapError(err, id)
	}

	l := toDomain(row)
	return &l, nil
}

// List returns the sightings of filter.UserID.
func (r *Repo) List(ctx context.Context, filter domain.LocationFilter) ([]domain.PlantLocation, error) {
	where := squirrel.And{squirrel.Eq{"l.user_id": filter.UserID}}
	if filter.PlantID != nil {
		where = append(where, squirrel.Eq{"l.plant_id": *filter.PlantID})
	}

	sql, args, err := postgres.Builder().
		Select(locationColumns).
		From(locationFrom).
		Where(where).
		OrderBy(postgres.OrderBy(sortColumns, filter.SortBy, "l.created_at", filter.SortDesc || filter.SortBy == ""), "l.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list plant_locations: %w", err)
	}

	return r.selectLocations(ctx, sql, args...)
}

// ListByPlant returns every sighting of a plant, newest first.
func (r *Repo) ListByPlant(ctx context.Context, plantID int64) ([]domain.PlantLocation, error) {
	return r.selectLocations(ctx, selectLocation+` WHERE l.plant_id = $1 ORDER BY l.created_at DESC, l.id DESC`, plantID)
}

func (r *Repo) selectLocations(ctx context.Context, sql string, args ...any) ([]domain.PlantLocation, error) {
	var rows []locationRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list plant_locations: %w", postgres.MapError(err, "plant_location", nil))
	}

	out := make([]domain.PlantLocation, len(rows))
	for i, row := range rows {
		out[i] = toDomain(row)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a sighting. Returns domain.ErrNotFound if the plant does
// not exist.
func (r *Repo) Create(ctx context.Context, l *domain.PlantLocation) (*domain.PlantLocation, error) {
	var id int64
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`INSERT INTO plant_locations (plant_id, user_id, latitude, longitude, quantity, notes)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		l.PlantID, l.UserID, l.Latitude, l.Longitude, l.Quantity, l.Notes,
	).Scan(&id)
	if err != nil {
		return nil, postgres.MapError(err, "plant_location", nil)
	}

	return r.GetByID(ctx, l.UserID, id)
}

// Update overwrites the editable fields of a sighting owned by l.UserID.
func (r *Repo) Update(ctx context.Context, l *domain.PlantLocation) (*domain.PlantLocation, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE plant_locations
		    SET plant_id = $3, latitude = $4, longitude = $5, quantity = $6, notes = $7, updated_at = now()
		  WHERE id = $1 AND user_id = $2`,
		l.ID, l.UserID, l.PlantID, l.Latitude, l.Longitude, l.Quantity, l.Notes,
	)
	if err != nil {
		return nil, postgres.MapError(err, "plant_location", l.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("plant_location %d: %w", l.ID, domain.ErrNotFound)
	}

	return r.GetByID(ctx, l.UserID, l.ID)
}

// Delete removes a sighting owned by userID.
func (r *Repo) Delete(ctx context.Context, userID uuid.UUID, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`DELETE FROM plant_locations WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return postgres.MapError(err, "plant_location", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("plant_location %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func mapError(err error, id int64) error {
	if pgxscan.NotFound(err) {
		return fmt.Errorf("plant_location %d: %w", id, domain.ErrNotFound)
	}
	return postgres.MapError(err, "plant_location", id)
}

func toDomain(row locationRow) domain.PlantLocation {
	return domain.PlantLocation{
		ID:             row.ID,
		PlantID:        row.PlantID,
		UserID:         row.UserID,
		Latitude:       row.Latitude,
		Longitude:      row.Longitude,
		Quantity:       row.Quantity,
		Notes:          row.Notes,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
		PlantName:      row.PlantName,
		PlantImagePath: row.PlantImagePath,
	}
}
