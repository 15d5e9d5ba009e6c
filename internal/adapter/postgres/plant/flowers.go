package plant

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	postgres "github.com/SillyFizy/grow/internal/adapter/postgres"
	"github.com/SillyFizy/grow/internal/domain"
)

const partColumns = `id, plant_id, sepal_arrangement, sepal_range_min, sepal_range_max, sepals_fused,
	petal_arrangement, petal_range_min, petal_range_max, petals_fused`

type partRow struct {
	ID               int64  `db:"id"`
	PlantID          int64  `db:"plant_id"`
	SepalArrangement string `db:"sepal_arrangement"`
	SepalRangeMin    *int   `db:"sepal_range_min"`
	SepalRangeMax    *int   `db:"sepal_range_max"`
	SepalsFused      bool   `db:"sepals_fused"`
	PetalArrangement string `db:"petal_arrangement"`
	PetalRangeMin    *int   `db:"petal_range_min"`
	PetalRangeMax    *int   `db:"petal_range_max"`
	PetalsFused      bool   `db:"petals_fused"`
	Stamens          string `db:"stamens"`
	Carpels          string `db:"carpels"`
}

// CreateFlowerPart stores part for plantID in the table of its kind and
// returns the generated id. Gating by flower type is the caller's job.
func (r *Repo) CreateFlowerPart(ctx context.Context, plantID int64, part domain.FlowerPart) (int64, error) {
	base := part.Base()
	args := []any{
		plantID,
		string(base.SepalArrangement), base.SepalRangeMin, base.SepalRangeMax, base.SepalsFused,
		string(base.PetalArrangement), base.PetalRangeMin, base.PetalRangeMax, base.PetalsFused,
	}

	var sql string
	switch p := part.(type) {
	case *domain.MaleFlower:
		sql = insertPartSQL("male_flowers", "stamens")
		args = append(args, p.Stamens)
	case *domain.FemaleFlower:
		sql = insertPartSQL("female_flowers", "carpels")
		args = append(args, p.Carpels)
	case *domain.HermaphroditeFlower:
		sql = insertPartSQL("hermaphrodite_flowers", "stamens", "carpels")
		args = append(args, p.Stamens, p.Carpels)
	default:
		return 0, fmt.Errorf("unsupported flower part %T", part)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, postgres.MapError(err, part.Kind().String(), nil)
	}
	return id, nil
}

func insertPartSQL(table string, extra ...string) string {
	cols := `plant_id, sepal_arrangement, sepal_range_min, sepal_range_max, sepals_fused,
		petal_arrangement, petal_range_min, petal_range_max, petals_fused`
	vals := `$1, $2, $3, $4, $5, $6, $7, $8, $9`
	for i, c := range extra {
		cols += ", " + c
		vals += fmt.Sprintf(", $%d", 10+i)
	}
	return `INSERT INTO ` + table + ` (` + cols + `) VALUES (` + vals + `) RETURNING id`
}

// FlowerParts returns the flower parts of one plant.
func (r *Repo) FlowerParts(ctx context.Context, plantID int64) (domain.FlowerSet, error) {
	sets, err := r.FlowerPartsByPlantIDs(ctx, []int64{plantID})
	if err != nil {
		return domain.FlowerSet{}, err
	}
	return sets[plantID], nil
}

// FlowerPartsByPlantIDs loads the flower parts of many plants with one
// batched round trip. Plants without parts map to an empty set.
func (r *Repo) FlowerPartsByPlantIDs(ctx context.Context, plantIDs []int64) (map[int64]domain.FlowerSet, error) {
	out := make(map[int64]domain.FlowerSet, len(plantIDs))
	if len(plantIDs) == 0 {
		return out, nil
	}

	batch := &pgx.Batch{}
	batch.Queue(`SELECT `+partColumns+`, stamens, '' AS carpels FROM male_flowers WHERE plant_id = ANY($1)`, plantIDs)
	batch.Queue(`SELECT `+partColumns+`, '' AS stamens, carpels FROM female_flowers WHERE plant_id = ANY($1)`, plantIDs)
	batch.Queue(`SELECT `+partColumns+`, stamens, carpels FROM hermaphrodite_flowers WHERE plant_id = ANY($1)`, plantIDs)

	br := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer br.Close()

	for kind := range 3 {
		rows, err := br.Query()
		if err != nil {
			return nil, fmt.Errorf("query flower parts: %w", postgres.MapError(err, "flower_part", nil))
		}
		var parts []partRow
		if err := pgxscan.ScanAll(&parts, rows); err != nil {
			return nil, fmt.Errorf("scan flower parts: %w", postgres.MapError(err, "flower_part", nil))
		}

		for _, row := range parts {
			set := out[row.PlantID]
			switch kind {
			case 0:
				set.Male = &domain.MaleFlower{ID: row.ID, PlantID: row.PlantID, FlowerParts: row.parts(), Stamens: row.Stamens}
			case 1:
				set.Female = &domain.FemaleFlower{ID: row.ID, PlantID: row.PlantID, FlowerParts: row.parts(), Carpels: row.Carpels}
			case 2:
				set.Hermaphrodite = &domain.HermaphroditeFlower{ID: row.ID, PlantID: row.PlantID, FlowerParts: row.parts(), Stamens: row.Stamens, Carpels: row.Carpels}
			}
			out[row.PlantID] = set
		}
	}

	return out, nil
}

func (row partRow) parts() domain.FlowerParts {
	return domain.FlowerParts{
		SepalArrangement: domain.Arrangement(row.SepalArrangement),
		SepalRangeMin:    row.SepalRangeMin,
		SepalRangeMax:    row.SepalRangeMax,
		SepalsFused:      row.SepalsFused,
		PetalArrangement: domain.Arrangement(row.PetalArrangement),
		PetalRangeMin:    row.PetalRangeMin,
		PetalRangeMax:    row.PetalRangeMax,
		PetalsFused:      row.PetalsFused,
	}
}
