package topic

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/wosa-backend/internal/domain"
)

type topicRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Topic, error)
	List(ctx context.Context, filter domain.TopicFilter) ([]domain.Topic, error)
	GetMembers(ctx context.Context, topicID int64) (domain.TopicMembers, error)
	GetMembersByTopicIDs(ctx context.Context, topicIDs []int64) (map[int64]domain.TopicMembers, error)
	ListHistory(ctx context.Context, topicID int64, limit int) ([]domain.TopicHistory, error)
	SetInterface(ctx context.Context, topicID int64, interfaceID *int64, now time.Time) (*domain.Topic, error)
	Deprecate(ctx context.Context, topicID int64, now time.Time) (*domain.Topic, error)
}

type interfaceChecker interface {
	InterfaceExists(ctx context.Context, id int64) (bool, error)
}

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

// Service exposes read access to tracked topics and their curation actions.
type Service struct {
	topics     topicRepo
	interfaces interfaceChecker
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new topic service.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	interfaces interfaceChecker,
) *Service {
	return &Service{
		topics:     topics,
		interfaces: interfaces,
		log:        log.With("service", "topic"),
		now:        time.Now,
	}
}
