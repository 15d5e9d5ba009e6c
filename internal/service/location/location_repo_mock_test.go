package location

import (
	"context"
	"github.com/SillyFizy/grow/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ locationRepo = &locationRepoMock{}

type locationRepoMock struct {
	GetByIDFunc           func(ctx context.Context, userID uuid.UUID, id int64) (*domain.PlantLocation, error)
	ListFunc              func(ctx context.Context, filter domain.LocationFilter) ([]domain.PlantLocation, error)
	ListByPlantFunc       func(ctx context.Context, plantID int64) ([]domain.PlantLocation, error)
	CreateFunc            func(ctx context.Context, l *domain.PlantLocation) (*domain.PlantLocation, error)
	UpdateFunc            func(ctx context.Context, l *domain.PlantLocation) (*domain.PlantLocation, error)
	DeleteFunc            func(ctx context.Context, userID uuid.UUID, id int64) error
	PlantTotalsFunc       func(ctx context.Context, plantID int64) (domain.LocationTotals, error)
	UserTotalsFunc        func(ctx context.Context, userID uuid.UUID) (domain.LocationTotals, error)
	RecentByUserFunc      func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.PlantLocation, error)
	MostSpottedByUserFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SpottedPlant, error)

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Id     int64
		}
		List []struct {
			Ctx    context.Context
			Filter domain.LocationFilter
		}
		ListByPlant []struct {
			Ctx     context.Context
			PlantID int64
		}
		Create []struct {
			Ctx context.Context
			L   *domain.PlantLocation
		}
		Update []struct {
			Ctx context.Context
			L   *domain.PlantLocation
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Id     int64
		}
		PlantTotals []struct {
			Ctx     context.Context
			PlantID int64
		}
		UserTotals []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		RecentByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
		MostSpottedByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
	}
	lockGetByID           sync.RWMutex
	lockList              sync.RWMutex
	lockListByPlant       sync.RWMutex
	lockCreate            sync.RWMutex
	lockUpdate            sync.RWMutex
	lockDelete            sync.RWMutex
	lockPlantTotals       sync.RWMutex
	lockUserTotals        sync.RWMutex
	lockRecentByUser      sync.RWMutex
	lockMostSpottedByUser sync.RWMutex
}

func (mock *locationRepoMock) GetByID(ctx context.Context, userID uuid.UUID, id int64) (*domain.PlantLocation, error) {
	if mock.GetByIDFunc == nil {
		panic("locationRepoMock.GetByIDFunc: method is nil but locationRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Id     int64
	}{
		Ctx:    ctx,
		UserID: userID,
		Id:     id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *locationRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Id     int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *locationRepoMock) List(ctx context.Context, filter domain.LocationFilter) ([]domain.PlantLocation, error) {
	if mock.ListFunc == nil {
		panic("locationRepoMock.ListFunc: method is nil but locationRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.LocationFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *locationRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.LocationFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *locationRepoMock) ListByPlant(ctx context.Context, plantID int64) ([]domain.PlantLocation, error) {
	if mock.ListByPlantFunc == nil {
		panic("locationRepoMock.ListByPlantFunc: method is nil but locationRepo.ListByPlant was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		PlantID int64
	}{
		Ctx:     ctx,
		PlantID: plantID,
	}
	mock.lockListByPlant.Lock()
	mock.calls.ListByPlant = append(mock.calls.ListByPlant, callInfo)
	mock.lockListByPlant.Unlock()
	return mock.ListByPlantFunc(ctx, plantID)
}

func (mock *locationRepoMock) ListByPlantCalls() []struct {
	Ctx     context.Context
	PlantID int64
} {
	mock.lockListByPlant.RLock()
	calls := mock.calls.ListByPlant
	mock.lockListByPlant.RUnlock()
	return calls
}

func (mock *locationRepoMock) Create(ctx context.Context, l *domain.PlantLocation) (*domain.PlantLocation, error) {
	if mock.CreateFunc == nil {
		panic("locationRepoMock.CreateFunc: method is nil but locationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.PlantLocation
	}{
		Ctx: ctx,
		L:   l,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *locationRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   *domain.PlantLocation
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *locationRepoMock) Update(ctx context.Context, l *domain.PlantLocation) (*domain.PlantLocation, error) {
	if mock.UpdateFunc == nil {
		panic("locationRepoMock.UpdateFunc: method is nil but locationRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.PlantLocation
	}{
		Ctx: ctx,
		L:   l,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, l)
}

func (mock *locationRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	L   *domain.PlantLocation
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *locationRepoMock) Delete(ctx context.Context, userID uuid.UUID, id int64) error {
	if mock.DeleteFunc == nil {
		panic("locationRepoMock.DeleteFunc: method is nil but locationRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Id     int64
	}{
		Ctx:    ctx,
		UserID: userID,
		Id:     id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *locationRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Id     int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *locationRepoMock) PlantTotals(ctx context.Context, plantID int64) (domain.LocationTotals, error) {
	if mock.PlantTotalsFunc == nil {
		panic("locationRepoMock.PlantTotalsFunc: method is nil but locationRepo.PlantTotals was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		PlantID int64
	}{
		Ctx:     ctx,
		PlantID: plantID,
	}
	mock.lockPlantTotals.Lock()
	mock.calls.PlantTotals = append(mock.calls.PlantTotals, callInfo)
	mock.lockPlantTotals.Unlock()
	return mock.PlantTotalsFunc(ctx, plantID)
}

func (mock *locationRepoMock) PlantTotalsCalls() []struct {
	Ctx     context.Context
	PlantID int64
} {
	mock.lockPlantTotals.RLock()
	calls := mock.calls.PlantTotals
	mock.lockPlantTotals.RUnlock()
	return calls
}

func (mock *locationRepoMock) UserTotals(ctx context.Context, userID uuid.UUID) (domain.LocationTotals, error) {
	if mock.UserTotalsFunc == nil {
		panic("locationRepoMock.UserTotalsFunc: method is nil but locationRepo.UserTotals was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockUserTotals.Lock()
	mock.calls.UserTotals = append(mock.calls.UserTotals, callInfo)
	mock.lockUserTotals.Unlock()
	return mock.UserTotalsFunc(ctx, userID)
}

func (mock *locationRepoMock) UserTotalsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockUserTotals.RLock()
	calls := mock.calls.UserTotals
	mock.lockUserTotals.RUnlock()
	return calls
}

func (mock *locationRepoMock) RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.PlantLocation, error) {
	if mock.RecentByUserFunc == nil {
		panic("locationRepoMock.RecentByUserFunc: method is nil but locationRepo.RecentByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{
		Ctx:    ctx,
		UserID: userID,
		Limit:  limit,
	}
	mock.lockRecentByUser.Lock()
	mock.calls.RecentByUser = append(mock.calls.RecentByUser, callInfo)
	mock.lockRecentByUser.Unlock()
	return mock.RecentByUserFunc(ctx, userID, limit)
}

func (mock *locationRepoMock) RecentByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	mock.lockRecentByUser.RLock()
	calls := mock.calls.RecentByUser
	mock.lockRecentByUser.RUnlock()
	return calls
}

func (mock *locationRepoMock) MostSpottedByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SpottedPlant, error) {
	if mock.MostSpottedByUserFunc == nil {
		panic("locationRepoMock.MostSpottedByUserFunc: method is nil but locationRepo.MostSpottedByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{
		Ctx:    ctx,
		UserID: userID,
		Limit:  limit,
	}
	mock.lockMostSpottedByUser.Lock()
	mock.calls.MostSpottedByUser = append(mock.calls.MostSpottedByUser, callInfo)
	mock.lockMostSpottedByUser.Unlock()
	return mock.MostSpottedByUserFunc(ctx, userID, limit)
}

func (mock *locationRepoMock) MostSpottedByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	mock.lockMostSpottedByUser.RLock()
	calls := mock.calls.MostSpottedByUser
	mock.lockMostSpottedByUser.RUnlock()
	return calls
}
