package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/wosa-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context, page domain.Page) ([]domain.User, error)
	Create(ctx context.Context, name, email string, now time.Time) (*domain.User, error)
	Update(ctx context.Context, id int64, name, email *string, now time.Time) (*domain.User, error)
	SetActive(ctx context.Context, id int64, active bool, now time.Time) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// Service implements user management operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	now   func() time.Time
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		now:   time.Now,
	}
}
