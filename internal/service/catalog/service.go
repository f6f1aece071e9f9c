package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/wosa-backend/internal/domain"
)

type catalogRepo interface {
	CreateComponent(ctx context.Context, name string, description *string) (*domain.ApplicationComponent, error)
	ListComponents(ctx context.Context) ([]domain.ApplicationComponent, error)
	CreateInterfaceType(ctx context.Context, name string, description *string) (*domain.InterfaceType, error)
	ListInterfaceTypes(ctx context.Context) ([]domain.InterfaceType, error)
	CreateInterface(ctx context.Context, in domain.Interface) (*domain.Interface, error)
	ListInterfaces(ctx context.Context) ([]domain.Interface, error)
}

// Service manages application components, interface types and interfaces.
type Service struct {
	repo catalogRepo
	log  *slog.Logger
}

// NewService creates a new catalog service.
func NewService(log *slog.Logger, repo catalogRepo) *Service {
	return &Service{
		repo: repo,
		log:  log.With("service", "catalog"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
