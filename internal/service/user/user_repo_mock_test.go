package user

import (
	"context"
	"github.com/heartmarshall/wosa-backend/internal/domain"
	"sync"
	"time"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc    func(ctx context.Context, name string, email string, now time.Time) (*domain.User, error)
	DeleteFunc    func(ctx context.Context, id int64) error
	GetByIDFunc   func(ctx context.Context, id int64) (*domain.User, error)
	ListFunc      func(ctx context.Context, page domain.Page) ([]domain.User, error)
	SetActiveFunc func(ctx context.Context, id int64, active bool, now time.Time) (*domain.User, error)
	UpdateFunc    func(ctx context.Context, id int64, name *string, email *string, now time.Time) (*domain.User, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Name  string
			Email string
			Now   time.Time
		}
		Delete []struct {
			Ctx context.Context
			Id  int64
		}
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		List []struct {
			Ctx  context.Context
			Page domain.Page
		}
		SetActive []struct {
			Ctx    context.Context
			Id     int64
			Active bool
			Now    time.Time
		}
		Update []struct {
			Ctx   context.Context
			Id    int64
			Name  *string
			Email *string
			Now   time.Time
		}
	}
	lockCreate    sync.RWMutex
	lockDelete    sync.RWMutex
	lockGetByID   sync.RWMutex
	lockList      sync.RWMutex
	lockSetActive sync.RWMutex
	lockUpdate    sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, name string, email string, now time.Time) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Name  string
		Email string
		Now   time.Time
	}{Ctx: ctx, Name: name, Email: email, Now: now}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, name, email, now)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Name  string
	Email string
	Now   time.Time
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("userRepoMock.DeleteFunc: method is nil but userRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *userRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) List(ctx context.Context, page domain.Page) ([]domain.User, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Page domain.Page
	}{Ctx: ctx, Page: page}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, page)
}

func (mock *userRepoMock) ListCalls() []struct {
	Ctx  context.Context
	Page domain.Page
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *userRepoMock) SetActive(ctx context.Context, id int64, active bool, now time.Time) (*domain.User, error) {
	if mock.SetActiveFunc == nil {
		panic("userRepoMock.SetActiveFunc: method is nil but userRepo.SetActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     int64
		Active bool
		Now    time.Time
	}{Ctx: ctx, Id: id, Active: active, Now: now}
	mock.lockSetActive.Lock()
	mock.calls.SetActive = append(mock.calls.SetActive, callInfo)
	mock.lockSetActive.Unlock()
	return mock.SetActiveFunc(ctx, id, active, now)
}

func (mock *userRepoMock) SetActiveCalls() []struct {
	Ctx    context.Context
	Id     int64
	Active bool
	Now    time.Time
} {
	mock.lockSetActive.RLock()
	calls := mock.calls.SetActive
	mock.lockSetActive.RUnlock()
	return calls
}

func (mock *userRepoMock) Update(ctx context.Context, id int64, name *string, email *string, now time.Time) (*domain.User, error) {
	if mock.UpdateFunc == nil {
		panic("userRepoMock.UpdateFunc: method is nil but userRepo.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    int64
		Name  *string
		Email *string
		Now   time.Time
	}{Ctx: ctx, Id: id, Name: name, Email: email, Now: now}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, name, email, now)
}

func (mock *userRepoMock) UpdateCalls() []struct {
	Ctx   context.Context
	Id    int64
	Name  *string
	Email *string
	Now   time.Time
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
