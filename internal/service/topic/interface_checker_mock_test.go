package topic

import (
	"context"
	"sync"
)

var _ interfaceChecker = &interfaceCheckerMock{}

type interfaceCheckerMock struct {
	InterfaceExistsFunc func(ctx context.Context, id int64) (bool, error)

	calls struct {
		InterfaceExists []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockInterfaceExists sync.RWMutex
}

func (mock *interfaceCheckerMock) InterfaceExists(ctx context.Context, id int64) (bool, error) {
	if mock.InterfaceExistsFunc == nil {
		panic("interfaceCheckerMock.InterfaceExistsFunc: method is nil but interfaceChecker.InterfaceExists was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockInterfaceExists.Lock()
	mock.calls.InterfaceExists = append(mock.calls.InterfaceExists, callInfo)
	mock.lockInterfaceExists.Unlock()
	return mock.InterfaceExistsFunc(ctx, id)
}

func (mock *interfaceCheckerMock) InterfaceExistsCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockInterfaceExists.RLock()
	calls := mock.calls.InterfaceExists
	mock.lockInterfaceExists.RUnlock()
	return calls
}
