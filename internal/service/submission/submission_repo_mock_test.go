package submission

import (
	"context"
	"github.com/SillyFizy/grow/internal/domain"
	"sync"
)

var _ submissionRepo = &submissionRepoMock{}

type submissionRepoMock struct {
	GetByIDFunc           func(ctx context.Context, id int64) (*domain.PlantSubmission, error)
	ListFunc              func(ctx context.Context, filter domain.SubmissionFilter) ([]domain.PlantSubmission, int, error)
	PendingImagePathsFunc func(ctx context.Context) ([]string, error)
	CreateFunc            func(ctx context.Context, s *domain.PlantSubmission) (*domain.PlantSubmission, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		List []struct {
			Ctx    context.Context
			Filter domain.SubmissionFilter
		}
		PendingImagePaths []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx context.Context
			S   *domain.PlantSubmission
		}
	}
	lockGetByID           sync.RWMutex
	lockList              sync.RWMutex
	lockPendingImagePaths sync.RWMutex
	lockCreate            sync.RWMutex
}

func (mock *submissionRepoMock) GetByID(ctx context.Context, id int64) (*domain.PlantSubmission, error) {
	if mock.GetByIDFunc == nil {
		panic("submissionRepoMock.GetByIDFunc: method is nil but submissionRepo.GetByID was just called")
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

func (mock *submissionRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *submissionRepoMock) List(ctx context.Context, filter domain.SubmissionFilter) ([]domain.PlantSubmission, int, error) {
	if mock.ListFunc == nil {
		panic("submissionRepoMock.ListFunc: method is nil but submissionRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.SubmissionFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *submissionRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.SubmissionFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *submissionRepoMock) PendingImagePaths(ctx context.Context) ([]string, error) {
	if mock.PendingImagePathsFunc == nil {
		panic("submissionRepoMock.PendingImagePathsFunc: method is nil but submissionRepo.PendingImagePaths was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockPendingImagePaths.Lock()
	mock.calls.PendingImagePaths = append(mock.calls.PendingImagePaths, callInfo)
	mock.lockPendingImagePaths.Unlock()
	return mock.PendingImagePathsFunc(ctx)
}

func (mock *submissionRepoMock) PendingImagePathsCalls() []struct {
	Ctx context.Context
} {
	mock.lockPendingImagePaths.RLock()
	calls := mock.calls.PendingImagePaths
	mock.lockPendingImagePaths.RUnlock()
	return calls
}

func (mock *submissionRepoMock) Create(ctx context.Context, s *domain.PlantSubmission) (*domain.PlantSubmission, error) {
	if mock.CreateFunc == nil {
		panic("submissionRepoMock.CreateFunc: method is nil but submissionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.PlantSubmission
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *submissionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.PlantSubmission
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
