package catalog

import (
	"context"
	"github.com/heartmarshall/wosa-backend/internal/domain"
	"sync"
)

var _ catalogRepo = &catalogRepoMock{}

type catalogRepoMock struct {
	CreateComponentFunc     func(ctx context.Context, name string, description *string) (*domain.ApplicationComponent, error)
	CreateInterfaceFunc     func(ctx context.Context, in domain.Interface) (*domain.Interface, error)
	CreateInterfaceTypeFunc func(ctx context.Context, name string, description *string) (*domain.InterfaceType, error)
	ListComponentsFunc      func(ctx context.Context) ([]domain.ApplicationComponent, error)
	ListInterfaceTypesFunc  func(ctx context.Context) ([]domain.InterfaceType, error)
	ListInterfacesFunc      func(ctx context.Context) ([]domain.Interface, error)

	calls struct {
		CreateComponent []struct {
			Ctx         context.Context
			Name        string
			Description *string
		}
		CreateInterface []struct {
			Ctx context.Context
			In  domain.Interface
		}
		CreateInterfaceType []struct {
			Ctx         context.Context
			Name        string
			Description *string
		}
		ListComponents []struct {
			Ctx context.Context
		}
		ListInterfaceTypes []struct {
			Ctx context.Context
		}
		ListInterfaces []struct {
			Ctx context.Context
		}
	}
	lockCreateComponent     sync.RWMutex
	lockCreateInterface     sync.RWMutex
	lockCreateInterfaceType sync.RWMutex
	lockListComponents      sync.RWMutex
	lockListInterfaceTypes  sync.RWMutex
	lockListInterfaces      sync.RWMutex
}

func (mock *catalogRepoMock) CreateComponent(ctx context.Context, name string, description *string) (*domain.ApplicationComponent, error) {
	if mock.CreateComponentFunc == nil {
		panic("catalogRepoMock.CreateComponentFunc: method is nil but catalogRepo.CreateComponent was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Name        string
		Description *string
	}{Ctx: ctx, Name: name, Description: description}
	mock.lockCreateComponent.Lock()
	mock.calls.CreateComponent = append(mock.calls.CreateComponent, callInfo)
	mock.lockCreateComponent.Unlock()
	return mock.CreateComponentFunc(ctx, name, description)
}

func (mock *catalogRepoMock) CreateComponentCalls() []struct {
	Ctx         context.Context
	Name        string
	Description *string
} {
	mock.lockCreateComponent.RLock()
	calls := mock.calls.CreateComponent
	mock.lockCreateComponent.RUnlock()
	return calls
}

func (mock *catalogRepoMock) CreateInterface(ctx context.Context, in domain.Interface) (*domain.Interface, error) {
	if mock.CreateInterfaceFunc == nil {
		panic("catalogRepoMock.CreateInterfaceFunc: method is nil but catalogRepo.CreateInterface was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  domain.Interface
	}{Ctx: ctx, In: in}
	mock.lockCreateInterface.Lock()
	mock.calls.CreateInterface = append(mock.calls.CreateInterface, callInfo)
	mock.lockCreateInterface.Unlock()
	return mock.CreateInterfaceFunc(ctx, in)
}

func (mock *catalogRepoMock) CreateInterfaceCalls() []struct {
	Ctx context.Context
	In  domain.Interface
} {
	mock.lockCreateInterface.RLock()
	calls := mock.calls.CreateInterface
	mock.lockCreateInterface.RUnlock()
	return calls
}

func (mock *catalogRepoMock) CreateInterfaceType(ctx context.Context, name string, description *string) (*domain.InterfaceType, error) {
	if mock.CreateInterfaceTypeFunc == nil {
		panic("catalogRepoMock.CreateInterfaceTypeFunc: method is nil but catalogRepo.CreateInterfaceType was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Name        string
		Description *string
	}{Ctx: ctx, Name: name, Description: description}
	mock.lockCreateInterfaceType.Lock()
	mock.calls.CreateInterfaceType = append(mock.calls.CreateInterfaceType, callInfo)
	mock.lockCreateInterfaceType.Unlock()
	return mock.CreateInterfaceTypeFunc(ctx, name, description)
}

func (mock *catalogRepoMock) CreateInterfaceTypeCalls() []struct {
	Ctx         context.Context
	Name        string
	Description *string
} {
	mock.lockCreateInterfaceType.RLock()
	calls := mock.calls.CreateInterfaceType
	mock.lockCreateInterfaceType.RUnlock()
	return calls
}

func (mock *catalogRepoMock) ListComponents(ctx context.Context) ([]domain.ApplicationComponent, error) {
	if mock.ListComponentsFunc == nil {
		panic("catalogRepoMock.ListComponentsFunc: method is nil but catalogRepo.ListComponents was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListComponents.Lock()
	mock.calls.ListComponents = append(mock.calls.ListComponents, callInfo)
	mock.lockListComponents.Unlock()
	return mock.ListComponentsFunc(ctx)
}

func (mock *catalogRepoMock) ListComponentsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListComponents.RLock()
	calls := mock.calls.ListComponents
	mock.lockListComponents.RUnlock()
	return calls
}

func (mock *catalogRepoMock) ListInterfaceTypes(ctx context.Context) ([]domain.InterfaceType, error) {
	if mock.ListInterfaceTypesFunc == nil {
		panic("catalogRepoMock.ListInterfaceTypesFunc: method is nil but catalogRepo.ListInterfaceTypes was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListInterfaceTypes.Lock()
	mock.calls.ListInterfaceTypes = append(mock.calls.ListInterfaceTypes, callInfo)
	mock.lockListInterfaceTypes.Unlock()
	return mock.ListInterfaceTypesFunc(ctx)
}

func (mock *catalogRepoMock) ListInterfaceTypesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListInterfaceTypes.RLock()
	calls := mock.calls.ListInterfaceTypes
	mock.lockListInterfaceTypes.RUnlock()
	return calls
}

func (mock *catalogRepoMock) ListInterfaces(ctx context.Context) ([]domain.Interface, error) {
	if mock.ListInterfacesFunc == nil {
		panic("catalogRepoMock.ListInterfacesFunc: method is nil but catalogRepo.ListInterfaces was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListInterfaces.Lock()
	mock.calls.ListInterfaces = append(mock.calls.ListInterfaces, callInfo)
	mock.lockListInterfaces.Unlock()
	return mock.ListInterfacesFunc(ctx)
}

func (mock *catalogRepoMock) ListInterfacesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListInterfaces.RLock()
	calls := mock.calls.ListInterfaces
	mock.lockListInterfaces.RUnlock()
	return calls
}
