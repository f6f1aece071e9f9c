// Package idalloc reports whether a requested id is free in an entity table
// and proposes the next one otherwise. Ids are never reserved.
package idalloc

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wosa-backend/internal/domain"
)

type idRepo interface {
	Exists(ctx context.Context, kind domain.EntityKind, id int64) (bool, error)
	NextID(ctx context.Context, kind domain.EntityKind) (int64, error)
}

// Service answers id availability questions.
type Service struct {
	ids idRepo
	log *slog.Logger
}

// NewService creates a new id allocation service.
func NewService(log *slog.Logger, ids idRepo) *Service {
	return &Service{
		ids: ids,
		log: log.With("service", "idalloc"),
	}
}

// Input holds the parameters of an availability query.
type Input struct {
	Entity      string
	RequestedID int64
}

// Validate checks all fields and collects all errors.
func (i Input) Validate() error {
	var errs []domain.FieldError

	if !domain.EntityKind(i.Entity).IsValid() {
		errs = append(errs, domain.FieldError{Field: "entity", Message: fmt.Sprintf("unknown entity: %s", i.Entity)})
	}
	if i.RequestedID < 1 {
		errs = append(errs, domain.FieldError{Field: "requested_id", Message: "must be >= 1"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Result is the outcome of an availability query.
type Result struct {
	Entity      string
	RequestedID int64
	AvailableID int64
	IsAvailable bool
}

// NextAvailableID returns the requested id when it is free, otherwise max(id)+1.
func (s *Service) NextAvailableID(ctx context.Context, input Input) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	kind := domain.EntityKind(input.Entity)

	exists, err := s.ids.Exists(ctx, kind, input.RequestedID)
	if err != nil {
		return nil, fmt.Errorf("check id: %w", err)
	}
	if !exists {
		return &Result{
			Entity:      input.Entity,
			RequestedID: input.RequestedID,
			AvailableID: input.RequestedID,
			IsAvailable: true,
		}, nil
	}

	next, err := s.ids.NextID(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("next id: %w", err)
	}

	s.log.DebugContext(ctx, "requested id taken",
		slog.String("entity", input.Entity),
		slog.Int64("requested_id", input.RequestedID),
		slog.Int64("available_id", next),
	)

	return &Result{
		Entity:      input.Entity,
		RequestedID: input.RequestedID,
		AvailableID: next,
		IsAvailable: false,
	}, nil
}
