package ingest

import (
	"context"
	"github.com/heartmarshall/wosa-backend/internal/domain"
	"sync"
	"time"
)

var _ fileRepo = &fileRepoMock{}

type fileRepoMock struct {
	CreateFunc         func(ctx context.Context, f *domain.UploadedFile) (*domain.UploadedFile, error)
	GetByIDFunc        func(ctx context.Context, id int64) (*domain.UploadedFile, error)
	ListFunc           func(ctx context.Context, page domain.Page) ([]domain.UploadedFile, error)
	MarkProcessingFunc func(ctx context.Context, id int64, at time.Time) error
	SetStatusFunc      func(ctx context.Context, id int64, status domain.FileStatus) error

	calls struct {
		Create []struct {
			Ctx context.Context
			F   *domain.UploadedFile
		}
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		List []struct {
			Ctx  context.Context
			Page domain.Page
		}
		MarkProcessing []struct {
			Ctx context.Context
			Id  int64
			At  time.Time
		}
		SetStatus []struct {
			Ctx    context.Context
			Id     int64
			Status domain.FileStatus
		}
	}
	lockCreate         sync.RWMutex
	lockGetByID        sync.RWMutex
	lockList           sync.RWMutex
	lockMarkProcessing sync.RWMutex
	lockSetStatus      sync.RWMutex
}

func (mock *fileRepoMock) Create(ctx context.Context, f *domain.UploadedFile) (*domain.UploadedFile, error) {
	if mock.CreateFunc == nil {
		panic("fileRepoMock.CreateFunc: method is nil but fileRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   *domain.UploadedFile
	}{Ctx: ctx, F: f}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, f)
}

func (mock *fileRepoMock) CreateCalls() []struct {
	Ctx context.Context
	F   *domain.UploadedFile
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *fileRepoMock) GetByID(ctx context.Context, id int64) (*domain.UploadedFile, error) {
	if mock.GetByIDFunc == nil {
		panic("fileRepoMock.GetByIDFunc: method is nil but fileRepo.GetByID was just called")
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

func (mock *fileRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *fileRepoMock) List(ctx context.Context, page domain.Page) ([]domain.UploadedFile, error) {
	if mock.ListFunc == nil {
		panic("fileRepoMock.ListFunc: method is nil but fileRepo.List was just called")
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

func (mock *fileRepoMock) ListCalls() []struct {
	Ctx  context.Context
	Page domain.Page
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *fileRepoMock) MarkProcessing(ctx context.Context, id int64, at time.Time) error {
	if mock.MarkProcessingFunc == nil {
		panic("fileRepoMock.MarkProcessingFunc: method is nil but fileRepo.MarkProcessing was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
		At  time.Time
	}{Ctx: ctx, Id: id, At: at}
	mock.lockMarkProcessing.Lock()
	mock.calls.MarkProcessing = append(mock.calls.MarkProcessing, callInfo)
	mock.lockMarkProcessing.Unlock()
	return mock.MarkProcessingFunc(ctx, id, at)
}

func (mock *fileRepoMock) MarkProcessingCalls() []struct {
	Ctx context.Context
	Id  int64
	At  time.Time
} {
	mock.lockMarkProcessing.RLock()
	calls := mock.calls.MarkProcessing
	mock.lockMarkProcessing.RUnlock()
	return calls
}

func (mock *fileRepoMock) SetStatus(ctx context.Context, id int64, status domain.FileStatus) error {
	if mock.SetStatusFunc == nil {
		panic("fileRepoMock.SetStatusFunc: method is nil but fileRepo.SetStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     int64
		Status domain.FileStatus
	}{Ctx: ctx, Id: id, Status: status}
	mock.lockSetStatus.Lock()
	mock.calls.SetStatus = append(mock.calls.SetStatus, callInfo)
	mock.lockSetStatus.Unlock()
	return mock.SetStatusFunc(ctx, id, status)
}

func (mock *fileRepoMock) SetStatusCalls() []struct {
	Ctx    context.Context
	Id     int64
	Status domain.FileStatus
} {
	mock.lockSetStatus.RLock()
	calls := mock.calls.SetStatus
	mock.lockSetStatus.RUnlock()
	return calls
}
