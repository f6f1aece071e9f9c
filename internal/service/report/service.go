package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/wosa-backend/internal/domain"
)

type reportRepo interface {
	Rows(ctx context.Context, reportType domain.ReportType, now time.Time) ([]domain.ReportRow, error)
	Create(ctx context.Context, rep *domain.Report, rows []domain.ReportRow) (*domain.Report, error)
	GetByID(ctx context.Context, id int64) (*domain.Report, error)
	List(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, error)
	ListItems(ctx context.Context, reportID int64) ([]domain.ReportItem, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Clock supplies the reference time report windows are computed from.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Service generates and serves the canned topic reports.
type Service struct {
	reports reportRepo
	tx      txManager
	clock   Clock
	log     *slog.Logger
}

// NewService creates a new report service. A nil clock uses the system time.
func NewService(
	log *slog.Logger,
	reports reportRepo,
	tx txManager,
	clock Clock,
) *Service {
	if clock == nil {
		clock = systemClock{}
	}
	return &Service{
		reports: reports,
		tx:      tx,
		clock:   clock,
		log:     log.With("service", "report"),
	}
}
