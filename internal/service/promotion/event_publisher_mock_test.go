package promotion

import (
	"context"
	"sync"
	"time"
)

var _ eventPublisher = &eventPublisherMock{}

type eventPublisherMock struct {
	PlantPromotedFunc       func(ctx context.Context, submissionID int64, plantID int64, at time.Time)
	SubmissionsRejectedFunc func(ctx context.Context, ids []int64, at time.Time)

	calls struct {
		PlantPromoted []struct {
			Ctx          context.Context
			SubmissionID int64
			PlantID      int64
			At           time.Time
		}
		SubmissionsRejected []struct {
			Ctx context.Context
			Ids []int64
			At  time.Time
		}
	}
	lockPlantPromoted       sync.RWMutex
	lockSubmissionsRejected sync.RWMutex
}

func (mock *eventPublisherMock) PlantPromoted(ctx context.Context, submissionID int64, plantID int64, at time.Time) {
	if mock.PlantPromotedFunc == nil {
		panic("eventPublisherMock.PlantPromotedFunc: method is nil but eventPublisher.PlantPromoted was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		SubmissionID int64
		PlantID      int64
		At           time.Time
	}{
		Ctx:          ctx,
		SubmissionID: submissionID,
		PlantID:      plantID,
		At:           at,
	}
	mock.lockPlantPromoted.Lock()
	mock.calls.PlantPromoted = append(mock.calls.PlantPromoted, callInfo)
	mock.lockPlantPromoted.Unlock()
	mock.PlantPromotedFunc(ctx, submissionID, plantID, at)
}

func (mock *eventPublisherMock) PlantPromotedCalls() []struct {
	Ctx          context.Context
	SubmissionID int64
	PlantID      int64
	At           time.Time
} {
	mock.lockPlantPromoted.RLock()
	calls := mock.calls.PlantPromoted
	mock.lockPlantPromoted.RUnlock()
	return calls
}

func (mock *eventPublisherMock) SubmissionsRejected(ctx context.Context, ids []int64, at time.Time) {
	if mock.SubmissionsRejectedFunc == nil {
		panic("eventPublisherMock.SubmissionsRejectedFunc: method is nil but eventPublisher.SubmissionsRejected was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []int64
		At  time.Time
	}{
		Ctx: ctx,
		Ids: ids,
		At:  at,
	}
	mock.lockSubmissionsRejected.Lock()
	mock.calls.SubmissionsRejected = append(mock.calls.SubmissionsRejected, callInfo)
	mock.lockSubmissionsRejected.Unlock()
	mock.SubmissionsRejectedFunc(ctx, ids, at)
}

func (mock *eventPublisherMock) SubmissionsRejectedCalls() []struct {
	Ctx context.Context
	Ids []int64
	At  time.Time
} {
	mock.lockSubmissionsRejected.RLock()
	calls := mock.calls.SubmissionsRejected
	mock.lockSubmissionsRejected.RUnlock()
	return calls
}
