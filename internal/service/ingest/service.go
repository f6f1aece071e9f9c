package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/wosa-backend/internal/domain"
)

type fileRepo interface {
	Create(ctx context.Context, f *domain.UploadedFile) (*domain.UploadedFile, error)
	GetByID(ctx context.Context, id int64) (*domain.UploadedFile, error)
	List(ctx context.Context, page domain.Page) ([]domain.UploadedFile, error)
	MarkProcessing(ctx context.Context, id int64, at time.Time) error
	SetStatus(ctx context.Context, id int64, status domain.FileStatus) error
}

type topicRepo interface {
	GetByName(ctx context.Context, name string) (*domain.Topic, error)
	Create(ctx context.Context, t *domain.Topic, now time.Time) (*domain.Topic, error)
	Update(ctx context.Context, t *domain.Topic, now time.Time, touched bool) (*domain.Topic, error)
	AddMembers(ctx context.Context, topicID int64, m domain.TopicMembers) error
	InsertHistory(ctx context.Context, h domain.TopicHistory) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service registers uploaded WOSA documents and folds their topics into the store.
type Service struct {
	files  fileRepo
	topics topicRepo
	tx     txManager
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a new ingestion service.
func NewService(
	log *slog.Logger,
	files fileRepo,
	topics topicRepo,
	tx txManager,
) *Service {
	return &Service{
		files:  files,
		topics: topics,
		tx:     tx,
		log:    log.With("service", "ingest"),
		now:    time.Now,
	}
}
