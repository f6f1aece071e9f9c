package ingest

import (
	"context"
	"github.com/heartmarshall/wosa-backend/internal/domain"
	"sync"
	"time"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	AddMembersFunc    func(ctx context.Context, topicID int64, m domain.TopicMembers) error
	CreateFunc        func(ctx context.Context, t *domain.Topic, now time.Time) (*domain.Topic, error)
	GetByNameFunc     func(ctx context.Context, name string) (*domain.Topic, error)
	InsertHistoryFunc func(ctx context.Context, h domain.TopicHistory) error
	UpdateFunc        func(ctx context.Context, t *domain.Topic, now time.Time, touched bool) (*domain.Topic, error)

	calls struct {
		AddMembers []struct {
			Ctx     context.Context
			TopicID int64
			M       domain.TopicMembers
		}
		Create []struct {
			Ctx context.Context
			T   *domain.Topic
			Now time.Time
		}
		GetByName []struct {
			Ctx  context.Context
			Name string
		}
		InsertHistory []struct {
			Ctx context.Context
			H   domain.TopicHistory
		}
		Update []struct {
			Ctx     context.Context
			T       *domain.Topic
			Now     time.Time
			Touched bool
		}
	}
	lockAddMembers    sync.RWMutex
	lockCreate        sync.RWMutex
	lockGetByName     sync.RWMutex
	lockInsertHistory sync.RWMutex
	lockUpdate        sync.RWMutex
}

func (mock *topicRepoMock) AddMembers(ctx context.Context, topicID int64, m domain.TopicMembers) error {
	if mock.AddMembersFunc == nil {
		panic("topicRepoMock.AddMembersFunc: method is nil but topicRepo.AddMembers was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID int64
		M       domain.TopicMembers
	}{Ctx: ctx, TopicID: topicID, M: m}
	mock.lockAddMembers.Lock()
	mock.calls.AddMembers = append(mock.calls.AddMembers, callInfo)
	mock.lockAddMembers.Unlock()
	return mock.AddMembersFunc(ctx, topicID, m)
}

func (mock *topicRepoMock) AddMembersCalls() []struct {
	Ctx     context.Context
	TopicID int64
	M       domain.TopicMembers
} {
	mock.lockAddMembers.RLock()
	calls := mock.calls.AddMembers
	mock.lockAddMembers.RUnlock()
	return calls
}

func (mock *topicRepoMock) Create(ctx context.Context, t *domain.Topic, now time.Time) (*domain.Topic, error) {
	if mock.CreateFunc == nil {
		panic("topicRepoMock.CreateFunc: method is nil but topicRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Topic
		Now time.Time
	}{Ctx: ctx, T: t, Now: now}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t, now)
}

func (mock *topicRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.Topic
	Now time.Time
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *topicRepoMock) GetByName(ctx context.Context, name string) (*domain.Topic, error) {
	if mock.GetByNameFunc == nil {
		panic("topicRepoMock.GetByNameFunc: method is nil but topicRepo.GetByName was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockGetByName.Lock()
	mock.calls.GetByName = append(mock.calls.GetByName, callInfo)
	mock.lockGetByName.Unlock()
	return mock.GetByNameFunc(ctx, name)
}

func (mock *topicRepoMock) GetByNameCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockGetByName.RLock()
	calls := mock.calls.GetByName
	mock.lockGetByName.RUnlock()
	return calls
}

func (mock *topicRepoMock) InsertHistory(ctx context.Context, h domain.TopicHistory) error {
	if mock.InsertHistoryFunc == nil {
		panic("topicRepoMock.InsertHistoryFunc: method is nil but topicRepo.InsertHistory was just called")
	}
	callInfo := struct {
		Ctx context.Context
		H   domain.TopicHistory
	}{Ctx: ctx, H: h}
	mock.lockInsertHistory.Lock()
	mock.calls.InsertHistory = append(mock.calls.InsertHistory, callInfo)
	mock.lockInsertHistory.Unlock()
	return mock.InsertHistoryFunc(ctx, h)
}

func (mock *topicRepoMock) InsertHistoryCalls() []struct {
	Ctx context.Context
	H   domain.TopicHistory
} {
	mock.lockInsertHistory.RLock()
	calls := mock.calls.InsertHistory
	mock.lockInsertHistory.RUnlock()
	return calls
}

func (mock *topicRepoMock) Update(ctx context.Context, t *domain.Topic, now time.Time, touched bool) (*domain.Topic, error) {
	if mock.UpdateFunc == nil {
		panic("topicRepoMock.UpdateFunc: method is nil but topicRepo.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		T       *domain.Topic
		Now     time.Time
		Touched bool
	}{Ctx: ctx, T: t, Now: now, Touched: touched}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, t, now, touched)
}

func (mock *topicRepoMock) UpdateCalls() []struct {
	Ctx     context.Context
	T       *domain.Topic
	Now     time.Time
	Touched bool
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
