package submission

import (
	"context"
	"github.com/SillyFizy/grow/internal/domain"
	"sync"
)

var _ familyRepo = &familyRepoMock{}

type familyRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.PlantFamily, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *familyRepoMock) GetByID(ctx context.Context, id int64) (*domain.PlantFamily, error) {
	if mock.GetByIDFunc == nil {
		panic("familyRepoMock.GetByIDFunc: method is nil but familyRepo.GetByID was just called")
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

func (mock *familyRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
