package catalog

import (
	"context"
	"github.com/SillyFizy/grow/internal/domain"
	"sync"
)

var _ plantCache = &plantCacheMock{}

type plantCacheMock struct {
	GetDetailFunc        func(ctx context.Context, plantID int64) (*domain.PlantDetail, bool, error)
	SetDetailFunc        func(ctx context.Context, d *domain.PlantDetail) error
	GetFamilyPlantsFunc  func(ctx context.Context, familyID int64) ([]domain.Plant, bool, error)
	SetFamilyPlantsFunc  func(ctx context.Context, familyID int64, plants []domain.Plant) error
	InvalidatePlantFunc  func(ctx context.Context, plantID int64, familyID int64) error
	InvalidateFamilyFunc func(ctx context.Context, familyID int64) error

	calls struct {
		GetDetail []struct {
			Ctx     context.Context
			PlantID int64
		}
		SetDetail []struct {
			Ctx context.Context
			D   *domain.PlantDetail
		}
		GetFamilyPlants []struct {
			Ctx      context.Context
			FamilyID int64
		}
		SetFamilyPlants []struct {
			Ctx      context.Context
			FamilyID int64
			Plants   []domain.Plant
		}
		InvalidatePlant []struct {
			Ctx      context.Context
			PlantID  int64
			FamilyID int64
		}
		InvalidateFamily []struct {
			Ctx      context.Context
			FamilyID int64
		}
	}
	lockGetDetail        sync.RWMutex
	lockSetDetail        sync.RWMutex
	lockGetFamilyPlants  sync.RWMutex
	lockSetFamilyPlants  sync.RWMutex
	lockInvalidatePlant  sync.RWMutex
	lockInvalidateFamily sync.RWMutex
}

func (mock *plantCacheMock) GetDetail(ctx context.Context, plantID int64) (*domain.PlantDetail, bool, error) {
	if mock.GetDetailFunc == nil {
		panic("plantCacheMock.GetDetailFunc: method is nil but plantCache.GetDetail was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		PlantID int64
	}{
		Ctx:     ctx,
		PlantID: plantID,
	}
	mock.lockGetDetail.Lock()
	mock.calls.GetDetail = append(mock.calls.GetDetail, callInfo)
	mock.lockGetDetail.Unlock()
	return mock.GetDetailFunc(ctx, plantID)
}

func (mock *plantCacheMock) GetDetailCalls() []struct {
	Ctx     context.Context
	PlantID int64
} {
	mock.lockGetDetail.RLock()
	calls := mock.calls.GetDetail
	mock.lockGetDetail.RUnlock()
	return calls
}

func (mock *plantCacheMock) SetDetail(ctx context.Context, d *domain.PlantDetail) error {
	if mock.SetDetailFunc == nil {
		panic("plantCacheMock.SetDetailFunc: method is nil but plantCache.SetDetail was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   *domain.PlantDetail
	}{
		Ctx: ctx,
		D:   d,
	}
	mock.lockSetDetail.Lock()
	mock.calls.SetDetail = append(mock.calls.SetDetail, callInfo)
	mock.lockSetDetail.Unlock()
	return mock.SetDetailFunc(ctx, d)
}

func (mock *plantCacheMock) SetDetailCalls() []struct {
	Ctx context.Context
	D   *domain.PlantDetail
} {
	mock.lockSetDetail.RLock()
	calls := mock.calls.SetDetail
	mock.lockSetDetail.RUnlock()
	return calls
}

func (mock *plantCacheMock) GetFamilyPlants(ctx context.Context, familyID int64) ([]domain.Plant, bool, error) {
	if mock.GetFamilyPlantsFunc == nil {
		panic("plantCacheMock.GetFamilyPlantsFunc: method is nil but plantCache.GetFamilyPlants was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		FamilyID int64
	}{
		Ctx:      ctx,
		FamilyID: familyID,
	}
	mock.lockGetFamilyPlants.Lock()
	mock.calls.GetFamilyPlants = append(mock.calls.GetFamilyPlants, callInfo)
	mock.lockGetFamilyPlants.Unlock()
	return mock.GetFamilyPlantsFunc(ctx, familyID)
}

func (mock *plantCacheMock) GetFamilyPlantsCalls() []struct {
	Ctx      context.Context
	FamilyID int64
} {
	mock.lockGetFamilyPlants.RLock()
	calls := mock.calls.GetFamilyPlants
	mock.lockGetFamilyPlants.RUnlock()
	return calls
}

func (mock *plantCacheMock) SetFamilyPlants(ctx context.Context, familyID int64, plants []domain.Plant) error {
	if mock.SetFamilyPlantsFunc == nil {
		panic("plantCacheMock.SetFamilyPlantsFunc: method is nil but plantCache.SetFamilyPlants was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		FamilyID int64
		Plants   []domain.Plant
	}{
		Ctx:      ctx,
		FamilyID: familyID,
		Plants:   plants,
	}
	mock.lockSetFamilyPlants.Lock()
	mock.calls.SetFamilyPlants = append(mock.calls.SetFamilyPlants, callInfo)
	mock.lockSetFamilyPlants.Unlock()
	return mock.SetFamilyPlantsFunc(ctx, familyID, plants)
}

func (mock *plantCacheMock) SetFamilyPlantsCalls() []struct {
	Ctx      context.Context
	FamilyID int64
	Plants   []domain.Plant
} {
	mock.lockSetFamilyPlants.RLock()
	calls := mock.calls.SetFamilyPlants
	mock.lockSetFamilyPlants.RUnlock()
	return calls
}

func (mock *plantCacheMock) InvalidatePlant(ctx context.Context, plantID int64, familyID int64) error {
	if mock.InvalidatePlantFunc == nil {
		panic("plantCacheMock.InvalidatePlantFunc: method is nil but plantCache.InvalidatePlant was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		PlantID  int64
		FamilyID int64
	}{
		Ctx:      ctx,
		PlantID:  plantID,
		FamilyID: familyID,
	}
	mock.lockInvalidatePlant.Lock()
	mock.calls.InvalidatePlant = append(mock.calls.InvalidatePlant, callInfo)
	mock.lockInvalidatePlant.Unlock()
	return mock.InvalidatePlantFunc(ctx, plantID, familyID)
}

func (mock *plantCacheMock) InvalidatePlantCalls() []struct {
	Ctx      context.Context
	PlantID  int64
	FamilyID int64
} {
	mock.lockInvalidatePlant.RLock()
	calls := mock.calls.InvalidatePlant
	mock.lockInvalidatePlant.RUnlock()
	return calls
}

func (mock *plantCacheMock) InvalidateFamily(ctx context.Context, familyID int64) error {
	if mock.InvalidateFamilyFunc == nil {
		panic("plantCacheMock.InvalidateFamilyFunc: method is nil but plantCache.InvalidateFamily was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		FamilyID int64
	}{
		Ctx:      ctx,
		FamilyID: familyID,
	}
	mock.lockInvalidateFamily.Lock()
	mock.calls.InvalidateFamily = append(mock.calls.InvalidateFamily, callInfo)
	mock.lockInvalidateFamily.Unlock()
	return mock.InvalidateFamilyFunc(ctx, familyID)
}

func (mock *plantCacheMock) InvalidateFamilyCalls() []struct {
	Ctx      context.Context
	FamilyID int64
} {
	mock.lockInvalidateFamily.RLock()
	calls := mock.calls.InvalidateFamily
	mock.lockInvalidateFamily.RUnlock()
	return calls
}
