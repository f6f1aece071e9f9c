package idalloc

import (
	"context"
	"github.com/heartmarshall/wosa-backend/internal/domain"
	"sync"
)

var _ idRepo = &idRepoMock{}

type idRepoMock struct {
	ExistsFunc func(ctx context.Context, kind domain.EntityKind, id int64) (bool, error)
	NextIDFunc func(ctx context.Context, kind domain.EntityKind) (int64, error)

	calls struct {
		Exists []struct {
			Ctx  context.Context
			Kind domain.EntityKind
			Id   int64
		}
		NextID []struct {
			Ctx  context.Context
			Kind domain.EntityKind
		}
	}
	lockExists sync.RWMutex
	lockNextID sync.RWMutex
}

func (mock *idRepoMock) Exists(ctx context.Context, kind domain.EntityKind, id int64) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("idRepoMock.ExistsFunc: method is nil but idRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind domain.EntityKind
		Id   int64
	}{Ctx: ctx, Kind: kind, Id: id}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, kind, id)
}

func (mock *idRepoMock) ExistsCalls() []struct {
	Ctx  context.Context
	Kind domain.EntityKind
	Id   int64
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *idRepoMock) NextID(ctx context.Context, kind domain.EntityKind) (int64, error) {
	if mock.NextIDFunc == nil {
		panic("idRepoMock.NextIDFunc: method is nil but idRepo.NextID was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind domain.EntityKind
	}{Ctx: ctx, Kind: kind}
	mock.lockNextID.Lock()
	mock.calls.NextID = append(mock.calls.NextID, callInfo)
	mock.lockNextID.Unlock()
	return mock.NextIDFunc(ctx, kind)
}

func (mock *idRepoMock) NextIDCalls() []struct {
	Ctx  context.Context
	Kind domain.EntityKind
} {
	mock.lockNextID.RLock()
	calls := mock.calls.NextID
	mock.lockNextID.RUnlock()
	return calls
}
