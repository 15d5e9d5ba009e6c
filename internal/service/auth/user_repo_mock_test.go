package auth

import (
	"context"
	"github.com/SillyFizy/grow/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByLoginFunc     func(ctx context.Context, login string) (*domain.User, error)
	CreateFunc         func(ctx context.Context, user *domain.User) (*domain.User, error)
	SetRoleByEmailFunc func(ctx context.Context, email string, role domain.UserRole) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByLogin []struct {
			Ctx   context.Context
			Login string
		}
		Create []struct {
			Ctx  context.Context
			User *domain.User
		}
		SetRoleByEmail []struct {
			Ctx   context.Context
			Email string
			Role  domain.UserRole
		}
	}
	lockGetByID        sync.RWMutex
	lockGetByLogin     sync.RWMutex
	lockCreate         sync.RWMutex
	lockSetRoleByEmail sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	if mock.GetByLoginFunc == nil {
		panic("userRepoMock.GetByLoginFunc: method is nil but userRepo.GetByLogin was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Login string
	}{
		Ctx:   ctx,
		Login: login,
	}
	mock.lockGetByLogin.Lock()
	mock.calls.GetByLogin = append(mock.calls.GetByLogin, callInfo)
	mock.lockGetByLogin.Unlock()
	return mock.GetByLoginFunc(ctx, login)
}

func (mock *userRepoMock) GetByLoginCalls() []struct {
	Ctx   context.Context
	Login string
} {
	mock.lockGetByLogin.RLock()
	calls := mock.calls.GetByLogin
	mock.lockGetByLogin.RUnlock()
	return calls
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
	}{
		Ctx:  ctx,
		User: user,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	User *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) SetRoleByEmail(ctx context.Context, email string, role domain.UserRole) (*domain.User, error) {
	if mock.SetRoleByEmailFunc == nil {
		panic("userRepoMock.SetRoleByEmailFunc: method is nil but userRepo.SetRoleByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
		Role  domain.UserRole
	}{
		Ctx:   ctx,
		Email: email,
		Role:  role,
	}
	mock.lockSetRoleByEmail.Lock()
	mock.calls.SetRoleByEmail = append(mock.calls.SetRoleByEmail, callInfo)
	mock.lockSetRoleByEmail.Unlock()
	return mock.SetRoleByEmailFunc(ctx, email, role)
}

func (mock *userRepoMock) SetRoleByEmailCalls() []struct {
	Ctx   context.Context
	Email string
	Role  domain.UserRole
} {
	mock.lockSetRoleByEmail.RLock()
	calls := mock.calls.SetRoleByEmail
	mock.lockSetRoleByEmail.RUnlock()
	return calls
}
