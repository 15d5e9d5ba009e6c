package location

import (
	"context"
	"github.com/SillyFizy/grow/internal/domain"
	"sync"
)

var _ plantRepo = &plantRepoMock{}

type plantRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Plant, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockGetByID sync.RWMutex
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
