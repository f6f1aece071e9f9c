package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/wosa-backend/internal/domain"
)

// Create registers a new user. Emails are unique.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))

	u, err := s.users.Create(ctx, strings.TrimSpace(input.Name), email, s.now().UTC())
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewConflictError("user", email)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.InfoContext(ctx, "user created", slog.Int64("user_id", u.ID))
	return u, nil
}

// Get returns one user.
func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// List returns users ordered by id.
func (s *Service) List(ctx context.Context, page domain.Page) ([]domain.User, error) {
	users, err := s.users.List(ctx, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Update changes name and/or email.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var name, email *string
	if input.Name != nil {
		n := strings.TrimSpace(*input.Name)
		name = &n
	}
	if input.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*input.Email))
		email = &e
	}

	u, err := s.users.Update(ctx, id, name, email, s.now().UTC())
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) && email != nil {
			return nil, domain.NewConflictError("user", *email)
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.log.InfoContext(ctx, "user updated", slog.Int64("user_id", u.ID))
	return u, nil
}

// Delete removes a user.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted", slog.Int64("user_id", id))
	return nil
}

// Activate marks a user active.
func (s *Service) Activate(ctx context.Context, id int64) (*domain.User, error) {
	return s.setActive(ctx, id, true)
}

// Deactivate marks a user inactive.
func (s *Service) Deactivate(ctx context.Context, id int64) (*domain.User, error) {
	return s.setActive(ctx, id, false)
}

func (s *Service) setActive(ctx context.Context, id int64, active bool) (*domain.User, error) {
	u, err := s.users.SetActive(ctx, id, active, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("set user active: %w", err)
	}

	s.log.InfoContext(ctx, "user activation changed",
		slog.Int64("user_id", id),
		slog.Bool("active", active),
	)
	return u, nil
}
