package report

import (
	"context"
	"github.com/heartmarshall/wosa-backend/internal/domain"
	"sync"
	"time"
)

var _ reportRepo = &reportRepoMock{}

type reportRepoMock struct {
	CreateFunc    func(ctx context.Context, rep *domain.Report, rows []domain.ReportRow) (*domain.Report, error)
	GetByIDFunc   func(ctx context.Context, id int64) (*domain.Report, error)
	ListFunc      func(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, error)
	ListItemsFunc func(ctx context.Context, reportID int64) ([]domain.ReportItem, error)
	RowsFunc      func(ctx context.Context, reportType domain.ReportType, now time.Time) ([]domain.ReportRow, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Rep  *domain.Report
			Rows []domain.ReportRow
		}
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		List []struct {
			Ctx    context.Context
			Filter domain.ReportFilter
		}
		ListItems []struct {
			Ctx      context.Context
			ReportID int64
		}
		Rows []struct {
			Ctx        context.Context
			ReportType domain.ReportType
			Now        time.Time
		}
	}
	lockCreate    sync.RWMutex
	lockGetByID   sync.RWMutex
	lockList      sync.RWMutex
	lockListItems sync.RWMutex
	lockRows      sync.RWMutex
}

func (mock *reportRepoMock) Create(ctx context.Context, rep *domain.Report, rows []domain.ReportRow) (*domain.Report, error) {
	if mock.CreateFunc == nil {
		panic("reportRepoMock.CreateFunc: method is nil but reportRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Rep  *domain.Report
		Rows []domain.ReportRow
	}{Ctx: ctx, Rep: rep, Rows: rows}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rep, rows)
}

func (mock *reportRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Rep  *domain.Report
	Rows []domain.ReportRow
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reportRepoMock) GetByID(ctx context.Context, id int64) (*domain.Report, error) {
	if mock.GetByIDFunc == nil {
		panic("reportRepoMock.GetByIDFunc: method is nil but reportRepo.GetByID was just called")
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

func (mock *reportRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *reportRepoMock) List(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, error) {
	if mock.ListFunc == nil {
		panic("reportRepoMock.ListFunc: method is nil but reportRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ReportFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *reportRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.ReportFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *reportRepoMock) ListItems(ctx context.Context, reportID int64) ([]domain.ReportItem, error) {
	if mock.ListItemsFunc == nil {
		panic("reportRepoMock.ListItemsFunc: method is nil but reportRepo.ListItems was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ReportID int64
	}{Ctx: ctx, ReportID: reportID}
	mock.lockListItems.Lock()
	mock.calls.ListItems = append(mock.calls.ListItems, callInfo)
	mock.lockListItems.Unlock()
	return mock.ListItemsFunc(ctx, reportID)
}

func (mock *reportRepoMock) ListItemsCalls() []struct {
	Ctx      context.Context
	ReportID int64
} {
	mock.lockListItems.RLock()
	calls := mock.calls.ListItems
	mock.lockListItems.RUnlock()
	return calls
}

func (mock *reportRepoMock) Rows(ctx context.Context, reportType domain.ReportType, now time.Time) ([]domain.ReportRow, error) {
	if mock.RowsFunc == nil {
		panic("reportRepoMock.RowsFunc: method is nil but reportRepo.Rows was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ReportType domain.ReportType
		Now        time.Time
	}{Ctx: ctx, ReportType: reportType, Now: now}
	mock.lockRows.Lock()
	mock.calls.Rows = append(mock.calls.Rows, callInfo)
	mock.lockRows.Unlock()
	return mock.RowsFunc(ctx, reportType, now)
}

func (mock *reportRepoMock) RowsCalls() []struct {
	Ctx        context.Context
	ReportType domain.ReportType
	Now        time.Time
} {
	mock.lockRows.RLock()
	calls := mock.calls.Rows
	mock.lockRows.RUnlock()
	return calls
}
