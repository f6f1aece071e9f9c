package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/wosa-backend/internal/domain"
)

// CreateApplicationComponent registers a new component. Names are unique.
func (s *Service) CreateApplicationComponent(ctx context.Context, input CreateNamedInput) (*domain.ApplicationComponent, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)

	c, err := s.repo.CreateComponent(ctx, name, trimOrNil(input.Description))
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewConflictError("application component", name)
		}
		return nil, fmt.Errorf("create application component: %w", err)
	}

	s.log.InfoContext(ctx, "application component created",
		slog.Int64("id", c.ID),
		slog.String("name", c.Name),
	)
	return c, nil
}

// ListApplicationComponents returns every component.
func (s *Service) ListApplicationComponents(ctx context.Context) ([]domain.ApplicationComponent, error) {
	list, err := s.repo.ListComponents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list application components: %w", err)
	}
	return list, nil
}

// CreateInterfaceType registers a new interface type. Names are unique.
func (s *Service) CreateInterfaceType(ctx context.Context, input CreateNamedInput) (*domain.InterfaceType, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)

	it, err := s.repo.CreateInterfaceType(ctx, name, trimOrNil(input.Description))
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewConflictError("interface type", name)
		}
		return nil, fmt.Errorf("create interface type: %w", err)
	}

	s.log.InfoContext(ctx, "interface type created",
		slog.Int64("id", it.ID),
		slog.String("name", it.Name),
	)
	return it, nil
}

// ListInterfaceTypes returns every interface type.
func (s *Service) ListInterfaceTypes(ctx context.Context) ([]domain.InterfaceType, error) {
	list, err := s.repo.ListInterfaceTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list interface types: %w", err)
	}
	return list, nil
}

// CreateInterface registers an interface under an existing component and type.
func (s *Service) CreateInterface(ctx context.Context, input CreateInterfaceInput) (*domain.Interface, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	iface, err := s.repo.CreateInterface(ctx, domain.Interface{
		Name:                   strings.TrimSpace(input.Name),
		Description:            trimOrNil(input.Description),
		ApplicationComponentID: input.ApplicationComponentID,
		InterfaceTypeID:        input.InterfaceTypeID,
	})
	if err != nil {
		return nil, fmt.Errorf("create interface: %w", err)
	}

	s.log.InfoContext(ctx, "interface created",
		slog.Int64("id", iface.ID),
		slog.Int64("application_component_id", iface.ApplicationComponentID),
		slog.Int64("interface_type_id", iface.InterfaceTypeID),
	)
	return iface, nil
}

// ListInterfaces returns every interface.
func (s *Service) ListInterfaces(ctx context.Context) ([]domain.Interface, error) {
	list, err := s.repo.ListInterfaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("list interfaces: %w", err)
	}
	return list, nil
}
