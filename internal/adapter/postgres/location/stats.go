package location

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/SillyFizy/grow/internal/adapter/postgres"
	"github.com/SillyFizy/grow/internal/domain"
)

type totalsRow struct {
	Locations   int `db:"total_locations"`
	PlantsFound int `db:"total_plants_found"`
	Distinct    int `db:"distinct_count"`
}

// PlantTotals counts the sightings of a plant. Distinct is the number of
// users who recorded it.
func (r *Repo) PlantTotals(ctx context.Context, plantID int64) (domain.LocationTotals, error) {
	var t totalsRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &t,
		`SELECT count(*) AS total_locations,
		        COALESCE(sum(quantity), 0) AS total_plants_found,
		        count(DISTINCT user_id) AS distinct_count
		   FROM plant_locations WHERE plant_id = $1`, plantID)
	if err != nil {
		return domain.LocationTotals{}, fmt.Errorf("plant location totals: %w", postgres.MapError(err, "plant_location", nil))
	}
	return domain.LocationTotals(t), nil
}

// UserTotals counts the sightings of a user. Distinct is the number of
// plants they recorded.
func (r *Repo) UserTotals(ctx context.Context, userID uuid.UUID) (domain.LocationTotals, error) {
	var t totalsRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &t,
		`SELECT count(*) AS total_locations,
		        COALESCE(sum(quantity), 0) AS total_plants_found,
		        count(DISTINCT plant_id) AS distinct_count
		   FROM plant_locations WHERE user_id = $1`, userID)
	if err != nil {
		return domain.LocationTotals{}, fmt.Errorf("user location totals: %w", postgres.MapError(err, "plant_location", nil))
	}
	return domain.LocationTotals(t), nil
}

// RecentByUser returns the newest limit sightings of a user.
func (r *Repo) RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.PlantLocation, error) {
	return r.selectLocations(ctx,
		selectLocation+` WHERE l.user_id = $1 ORDER BY l.created_at DESC, l.id DESC LIMIT $2`, userID, limit)
}

type spottedRow struct {
	PlantID        int64  `db:"plant_id"`
	NameArabic     string `db:"name_arabic"`
	NameScientific string `db:"name_scientific"`
	Sightings      int    `db:"sightings"`
	Quantity       int    `db:"quantity"`
}

// MostSpottedByUser ranks the plants a user recorded most often.
func (r *Repo) MostSpottedByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SpottedPlant, error) {
	var rows []spottedRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT l.plant_id, p.name_arabic, p.name_scientific,
		        count(*) AS sightings, sum(l.quantity) AS quantity
		   FROM plant_locations l JOIN plants p ON p.id = l.plant_id
		  WHERE l.user_id = $1
		  GROUP BY l.plant_id, p.name_arabic, p.name_scientific
		  ORDER BY sightings DESC, quantity DESC, l.plant_id
		  LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("most spotted plants: %w", postgres.MapError(err, "plant_location", nil))
	}

	out := make([]domain.SpottedPlant, len(rows))
	for i, row := range rows {
		out[i] = domain.SpottedPlant(row)
	}
	return out, nil
}
