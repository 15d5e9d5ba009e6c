package catalog

import (
	"context"
	"sync"
)

var _ blobStore = &blobStoreMock{}

type blobStoreMock struct {
	DeleteFunc func(ctx context.Context, path string) error

	calls struct {
		Delete []struct {
			Ctx  context.Context
			Path string
		}
	}
	lockDelete sync.RWMutex
}

func (mock *blobStoreMock) Delete(ctx context.Context, path string) error {
	if mock.DeleteFunc == nil {
		panic("blobStoreMock.DeleteFunc: method is nil but blobStore.Delete was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Path string
	}{
		Ctx:  ctx,
		Path: path,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, path)
}

func (mock *blobStoreMock) DeleteCalls() []struct {
	Ctx  context.Context
	Path string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
