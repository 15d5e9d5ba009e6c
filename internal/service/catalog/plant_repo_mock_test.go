package catalog

import (
	"context"
	"github.com/SillyFizy/grow/internal/domain"
	"sync"
)

var _ plantRepo = &plantRepoMock{}

type plantRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id int64) (*domain.Plant, error)
	ListFunc             func(ctx context.Context, filter domain.PlantFilter) ([]domain.Plant, int, error)
	ListByFamilyFunc     func(ctx context.Context, familyID int64) ([]domain.Plant, error)
	FlowerPartsFunc      func(ctx context.Context, plantID int64) (domain.FlowerSet, error)
	CreateFunc           func(ctx context.Context, p *domain.Plant) (*domain.Plant, error)
	CreateFlowerPartFunc func(ctx context.Context, plantID int64, part domain.FlowerPart) (int64, error)
	DeleteFunc           func(ctx context.Context, id int64) (string, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		List []struct {
			Ctx    context.Context
			Filter domain.PlantFilter
		}
		ListByFamily []struct {
			Ctx      context.Context
			FamilyID int64
		}
		FlowerParts []struct {
			Ctx     context.Context
			PlantID int64
		}
		Create []struct {
			Ctx context.Context
			P   *domain.Plant
		}
		CreateFlowerPart []struct {
			Ctx     context.Context
			PlantID int64
			Part    domain.FlowerPart
		}
		Delete []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockGetByID          sync.RWMutex
	lockList             sync.RWMutex
	lockListByFamily     sync.RWMutex
	lockFlowerParts      sync.RWMutex
	lockCreate           sync.RWMutex
	lockCreateFlowerPart sync.RWMutex
	lockDelete           sync.RWMutex
}

func (mock *plantRepoMock) GetByID(ctx context.Context, id int64) (*domain.Plant, error) {
	if mock.GetByIDFunc == nil {
		panic("plantRepoMock.GetByIDFunc: method is nil but plantRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *plantRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *plantRepoMock) List(ctx context.Context, filter domain.PlantFilter) ([]domain.Plant, int, error) {
	if mock.ListFunc == nil {
		panic("plantRepoMock.ListFunc: method is nil but plantRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.PlantFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *plantRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.PlantFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *plantRepoMock) ListByFamily(ctx context.Context, familyID int64) ([]domain.Plant, error) {
	if mock.ListByFamilyFunc == nil {
		panic("plantRepoMock.ListByFamilyFunc: method is nil but plantRepo.ListByFamily was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		FamilyID int64
	}{
		Ctx:      ctx,
		FamilyID: familyID,
	}
	mock.lockListByFamily.Lock()
	mock.calls.ListByFamily = append(mock.calls.ListByFamily, callInfo)
	mock.lockListByFamily.Unlock()
	return mock.ListByFamilyFunc(ctx, familyID)
}

func (mock *plantRepoMock) ListByFamilyCalls() []struct {
	Ctx      context.Context
	FamilyID int64
} {
	mock.lockListByFamily.RLock()
	calls := mock.calls.ListByFamily
	mock.lockListByFamily.RUnlock()
	return calls
}

func (mock *plantRepoMock) FlowerParts(ctx context.Context, plantID int64) (domain.FlowerSet, error) {
	if mock.FlowerPartsFunc == nil {
		panic("plantRepoMock.FlowerPartsFunc: method is nil but plantRepo.FlowerParts was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		PlantID int64
	}{
		Ctx:     ctx,
		PlantID: plantID,
	}
	mock.lockFlowerParts.Lock()
	mock.calls.FlowerParts = append(mock.calls.FlowerParts, callInfo)
	mock.lockFlowerParts.Unlock()
	return mock.FlowerPartsFunc(ctx, plantID)
}

func (mock *plantRepoMock) FlowerPartsCalls() []struct {
	Ctx     context.Context
	PlantID int64
} {
	mock.lockFlowerParts.RLock()
	calls := mock.calls.FlowerParts
	mock.lockFlowerParts.RUnlock()
	return calls
}

func (mock *plantRepoMock) Create(ctx context.Context, p *domain.Plant) (*domain.Plant, error) {
	if mock.CreateFunc == nil {
		panic("plantRepoMock.CreateFunc: method is nil but plantRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Plant
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *plantRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.Plant
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *plantRepoMock) CreateFlowerPart(ctx context.Context, plantID int64, part domain.FlowerPart) (int64, error) {
	if mock.CreateFlowerPartFunc == nil {
		panic("plantRepoMock.CreateFlowerPartFunc: method is nil but plantRepo.CreateFlowerPart was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		PlantID int64
		Part    domain.FlowerPart
	}{
		Ctx:     ctx,
		PlantID: plantID,
		Part:    part,
	}
	mock.lockCreateFlowerPart.Lock()
	mock.calls.CreateFlowerPart = append(mock.calls.CreateFlowerPart, callInfo)
	mock.lockCreateFlowerPart.Unlock()
	return mock.CreateFlowerPartFunc(ctx, plantID, part)
}

func (mock *plantRepoMock) CreateFlowerPartCalls() []struct {
	Ctx     context.Context
	PlantID int64
	Part    domain.FlowerPart
} {
	mock.lockCreateFlowerPart.RLock()
	calls := mock.calls.CreateFlowerPart
	mock.lockCreateFlowerPart.RUnlock()
	return calls
}

func (mock *plantRepoMock) Delete(ctx context.Context, id int64) (string, error) {
	if mock.DeleteFunc == nil {
		panic("plantRepoMock.DeleteFunc: method is nil but plantRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *plantRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
