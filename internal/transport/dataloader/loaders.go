package dataloader

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/SillyFizy/grow/internal/domain"
)

// ---------------------------------------------------------------------------
// Family by ID
// ---------------------------------------------------------------------------

// newFamilyBatchFn resolves unknown ids to nil rather than an error so one
// dangling reference does not fail a whole listing.
func newFamilyBatchFn(repo familyRepo) dataloader.BatchFunc[int64, *domain.PlantFamily] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[*domain.PlantFamily] {
		families, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.PlantFamily](len(keys), err)
		}

		byID := make(map[int64]*domain.PlantFamily, len(families))
		for i := range families {
			byID[families[i].ID] = &families[i]
		}

		return mapResults(keys, byID, nilValue[*domain.PlantFamily])
	}
}

// ---------------------------------------------------------------------------
// Flower parts by PlantID
// ---------------------------------------------------------------------------

func newFlowerPartsBatchFn(repo flowerPartRepo) dataloader.BatchFunc[int64, domain.FlowerSet] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[domain.FlowerSet] {
		sets, err := repo.FlowerPartsByPlantIDs(ctx, keys)
		if err != nil {
			return errorResults[domain.FlowerSet](len(keys), err)
		}

		return mapResults(keys, sets, nilValue[domain.FlowerSet])
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns n results all carrying the same error.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []int64, grouped map[int64]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// nilValue returns the zero value of V.
func nilValue[V any]() V {
	var zero V
	return zero
}

// LoadFamilies resolves the families of plants in one batch. The result is
// keyed by family id.
func (l *Loaders) LoadFamilies(ctx context.Context, plants []domain.Plant) (map[int64]*domain.PlantFamily, error) {
	ids := make([]int64, 0, len(plants))
	seen := make(map[int64]bool, len(plants))
	for _, p := range plants {
		if !seen[p.FamilyID] {
			seen[p.FamilyID] = true
			ids = append(ids, p.FamilyID)
		}
	}

	families, errs := l.FamilyByID.LoadMany(ctx, ids)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	out := make(map[int64]*domain.PlantFamily, len(ids))
	for i, id := range ids {
		out[id] = families[i]
	}
	return out, nil
}

// LoadFlowerSets resolves the flower parts of plants in one batch. The
// result is keyed by plant id.
func (l *Loaders) LoadFlowerSets(ctx context.Context, plants []domain.Plant) (map[int64]domain.FlowerSet, error) {
	ids := make([]int64, len(plants))
	for i, p := range plants {
		ids[i] = p.ID
	}

	sets, errs := l.FlowerPartsByPlantID.LoadMany(ctx, ids)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	out := make(map[int64]domain.FlowerSet, len(ids))
	for i, id := range ids {
		out[id] = sets[i]
	}
	return out, nil
}
