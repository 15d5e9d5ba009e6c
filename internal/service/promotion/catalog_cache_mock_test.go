package promotion

import (
	"context"
	"sync"
)

var _ catalogCache = &catalogCacheMock{}

type catalogCacheMock struct {
	InvalidateFamilyFunc func(ctx context.Context, familyID int64) error

	calls struct {
		InvalidateFamily []struct {
			Ctx      context.Context
			FamilyID int64
		}
	}
	lockInvalidateFamily sync.RWMutex
}

func (mock *catalogCacheMock) InvalidateFamily(ctx context.Context, familyID int64) error {
	if mock.InvalidateFamilyFunc == nil {
		panic("catalogCacheMock.InvalidateFamilyFunc: method is nil but catalogCache.InvalidateFamily was just called")
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

func (mock *catalogCacheMock) InvalidateFamilyCalls() []struct {
	Ctx      context.Context
	FamilyID int64
} {
	mock.lockInvalidateFamily.RLock()
	calls := mock.calls.InvalidateFamily
	mock.lockInvalidateFamily.RUnlock()
	return calls
}
