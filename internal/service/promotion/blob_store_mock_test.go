package promotion

import (
	"context"
	"sync"
)

var _ blobStore = &blobStoreMock{}

type blobStoreMock struct {
	ExistsFunc        func(ctx context.Context, path string) (bool, error)
	MovePermanentFunc func(ctx context.Context, tempPath string, plantID int64) (string, error)
	MoveFunc          func(ctx context.Context, from string, to string) error

	calls struct {
		Exists []struct {
			Ctx  context.Context
			Path string
		}
		MovePermanent []struct {
			Ctx      context.Context
			TempPath string
			PlantID  int64
		}
		Move []struct {
			Ctx  context.Context
			From string
			To   string
		}
	}
	lockExists        sync.RWMutex
	lockMovePermanent sync.RWMutex
	lockMove          sync.RWMutex
}

func (mock *blobStoreMock) Exists(ctx context.Context, path string) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("blobStoreMock.ExistsFunc: method is nil but blobStore.Exists was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Path string
	}{
		Ctx:  ctx,
		Path: path,
	}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, path)
}

func (mock *blobStoreMock) ExistsCalls() []struct {
	Ctx  context.Context
	Path string
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *blobStoreMock) MovePermanent(ctx context.Context, tempPath string, plantID int64) (string, error) {
	if mock.MovePermanentFunc == nil {
		panic("blobStoreMock.MovePermanentFunc: method is nil but blobStore.MovePermanent was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TempPath string
		PlantID  int64
	}{
		Ctx:      ctx,
		TempPath: tempPath,
		PlantID:  plantID,
	}
	mock.lockMovePermanent.Lock()
	mock.calls.MovePermanent = append(mock.calls.MovePermanent, callInfo)
	mock.lockMovePermanent.Unlock()
	return mock.MovePermanentFunc(ctx, tempPath, plantID)
}

func (mock *blobStoreMock) MovePermanentCalls() []struct {
	Ctx      context.Context
	TempPath string
	PlantID  int64
} {
	mock.lockMovePermanent.RLock()
	calls := mock.calls.MovePermanent
	mock.lockMovePermanent.RUnlock()
	return calls
}

func (mock *blobStoreMock) Move(ctx context.Context, from string, to string) error {
	if mock.MoveFunc == nil {
		panic("blobStoreMock.MoveFunc: method is nil but blobStore.Move was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		From string
		To   string
	}{
		Ctx:  ctx,
		From: from,
		To:   to,
	}
	mock.lockMove.Lock()
	mock.calls.Move = append(mock.calls.Move, callInfo)
	mock.lockMove.Unlock()
	return mock.MoveFunc(ctx, from, to)
}

func (mock *blobStoreMock) MoveCalls() []struct {
	Ctx  context.Context
	From string
	To   string
} {
	mock.lockMove.RLock()
	calls := mock.calls.Move
	mock.lockMove.RUnlock()
	return calls
}
