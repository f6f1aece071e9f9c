package topic

import (
	"context"
	"github.com/heartmarshall/wosa-backend/internal/domain"
	"sync"
	"time"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	DeprecateFunc            func(ctx context.Context, topicID int64, now time.Time) (*domain.Topic, error)
	GetByIDFunc              func(ctx context.Context, id int64) (*domain.Topic, error)
	GetMembersFunc           func(ctx context.Context, topicID int64) (domain.TopicMembers, error)
	GetMembersByTopicIDsFunc func(ctx context.Context, topicIDs []int64) (map[int64]domain.TopicMembers, error)
	ListFunc                 func(ctx context.Context, filter domain.TopicFilter) ([]domain.Topic, error)
	ListHistoryFunc          func(ctx context.Context, topicID int64, limit int) ([]domain.TopicHistory, error)
	SetInterfaceFunc         func(ctx context.Context, topicID int64, interfaceID *int64, now time.Time) (*domain.Topic, error)

	calls struct {
		Deprecate []struct {
			Ctx     context.Context
			TopicID int64
			Now     time.Time
		}
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		GetMembers []struct {
			Ctx     context.Context
			TopicID int64
		}
		GetMembersByTopicIDs []struct {
			Ctx      context.Context
			TopicIDs []int64
		}
		List []struct {
			Ctx    context.Context
			Filter domain.TopicFilter
		}
		ListHistory []struct {
			Ctx     context.Context
			TopicID int64
			Limit   int
		}
		SetInterface []struct {
			Ctx         context.Context
			TopicID     int64
			InterfaceID *int64
			Now         time.Time
		}
	}
	lockDeprecate            sync.RWMutex
	lockGetByID              sync.RWMutex
	lockGetMembers           sync.RWMutex
	lockGetMembersByTopicIDs sync.RWMutex
	lockList                 sync.RWMutex
	lockListHistory          sync.RWMutex
	lockSetInterface         sync.RWMutex
}

func (mock *topicRepoMock) Deprecate(ctx context.Context, topicID int64, now time.Time) (*domain.Topic, error) {
	if mock.DeprecateFunc == nil {
		panic("topicRepoMock.DeprecateFunc: method is nil but topicRepo.Deprecate was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID int64
		Now     time.Time
	}{Ctx: ctx, TopicID: topicID, Now: now}
	mock.lockDeprecate.Lock()
	mock.calls.Deprecate = append(mock.calls.Deprecate, callInfo)
	mock.lockDeprecate.Unlock()
	return mock.DeprecateFunc(ctx, topicID, now)
}

func (mock *topicRepoMock) DeprecateCalls() []struct {
	Ctx     context.Context
	TopicID int64
	Now     time.Time
} {
	mock.lockDeprecate.RLock()
	calls := mock.calls.Deprecate
	mock.lockDeprecate.RUnlock()
	return calls
}

func (mock *topicRepoMock) GetByID(ctx context.Context, id int64) (*domain.Topic, error) {
	if mock.GetByIDFunc == nil {
		panic("topicRepoMock.GetByIDFunc: method is nil but topicRepo.GetByID was just called")
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

func (mock *topicRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *topicRepoMock) GetMembers(ctx context.Context, topicID int64) (domain.TopicMembers, error) {
	if mock.GetMembersFunc == nil {
		panic("topicRepoMock.GetMembersFunc: method is nil but topicRepo.GetMembers was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID int64
	}{Ctx: ctx, TopicID: topicID}
	mock.lockGetMembers.Lock()
	mock.calls.GetMembers = append(mock.calls.GetMembers, callInfo)
	mock.lockGetMembers.Unlock()
	return mock.GetMembersFunc(ctx, topicID)
}

func (mock *topicRepoMock) GetMembersCalls() []struct {
	Ctx     context.Context
	TopicID int64
} {
	mock.lockGetMembers.RLock()
	calls := mock.calls.GetMembers
	mock.lockGetMembers.RUnlock()
	return calls
}

func (mock *topicRepoMock) GetMembersByTopicIDs(ctx context.Context, topicIDs []int64) (map[int64]domain.TopicMembers, error) {
	if mock.GetMembersByTopicIDsFunc == nil {
		panic("topicRepoMock.GetMembersByTopicIDsFunc: method is nil but topicRepo.GetMembersByTopicIDs was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TopicIDs []int64
	}{Ctx: ctx, TopicIDs: topicIDs}
	mock.lockGetMembersByTopicIDs.Lock()
	mock.calls.GetMembersByTopicIDs = append(mock.calls.GetMembersByTopicIDs, callInfo)
	mock.lockGetMembersByTopicIDs.Unlock()
	return mock.GetMembersByTopicIDsFunc(ctx, topicIDs)
}

func (mock *topicRepoMock) GetMembersByTopicIDsCalls() []struct {
	Ctx      context.Context
	TopicIDs []int64
} {
	mock.lockGetMembersByTopicIDs.RLock()
	calls := mock.calls.GetMembersByTopicIDs
	mock.lockGetMembersByTopicIDs.RUnlock()
	return calls
}

func (mock *topicRepoMock) List(ctx context.Context, filter domain.TopicFilter) ([]domain.Topic, error) {
	if mock.ListFunc == nil {
		panic("topicRepoMock.ListFunc: method is nil but topicRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.TopicFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *topicRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.TopicFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *topicRepoMock) ListHistory(ctx context.Context, topicID int64, limit int) ([]domain.TopicHistory, error) {
	if mock.ListHistoryFunc == nil {
		panic("topicRepoMock.ListHistoryFunc: method is nil but topicRepo.ListHistory was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID int64
		Limit   int
	}{Ctx: ctx, TopicID: topicID, Limit: limit}
	mock.lockListHistory.Lock()
	mock.calls.ListHistory = append(mock.calls.ListHistory, callInfo)
	mock.lockListHistory.Unlock()
	return mock.ListHistoryFunc(ctx, topicID, limit)
}

func (mock *topicRepoMock) ListHistoryCalls() []struct {
	Ctx     context.Context
	TopicID int64
	Limit   int
} {
	mock.lockListHistory.RLock()
	calls := mock.calls.ListHistory
	mock.lockListHistory.RUnlock()
	return calls
}

func (mock *topicRepoMock) SetInterface(ctx context.Context, topicID int64, interfaceID *int64, now time.Time) (*domain.Topic, error) {
	if mock.SetInterfaceFunc == nil {
		panic("topicRepoMock.SetInterfaceFunc: method is nil but topicRepo.SetInterface was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		TopicID     int64
		InterfaceID *int64
		Now         time.Time
	}{Ctx: ctx, TopicID: topicID, InterfaceID: interfaceID, Now: now}
	mock.lockSetInterface.Lock()
	mock.calls.SetInterface = append(mock.calls.SetInterface, callInfo)
	mock.lockSetInterface.Unlock()
	return mock.SetInterfaceFunc(ctx, topicID, interfaceID, now)
}

func (mock *topicRepoMock) SetInterfaceCalls() []struct {
	Ctx         context.Context
	TopicID     int64
	InterfaceID *int64
	Now         time.Time
} {
	mock.lockSetInterface.RLock()
	calls := mock.calls.SetInterface
	mock.lockSetInterface.RUnlock()
	return calls
}
