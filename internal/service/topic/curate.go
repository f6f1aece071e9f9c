package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wosa-backend/internal/domain"
)

// LinkInterface sets or clears the interface a topic belongs to.
func (s *Service) LinkInterface(ctx context.Context, input LinkInterfaceInput) (*domain.Topic, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.InterfaceID != nil {
		ok, err := s.interfaces.InterfaceExists(ctx, *input.InterfaceID)
		if err != nil {
			return nil, fmt.Errorf("check interface: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("interface %d: %w", *input.InterfaceID, domain.ErrNotFound)
		}
	}

	t, err := s.topics.SetInterface(ctx, input.TopicID, input.InterfaceID, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("link interface: %w", err)
	}

	attrs := []any{slog.Int64("topic_id", t.ID)}
	if input.InterfaceID != nil {
		attrs = append(attrs, slog.Int64("interface_id", *input.InterfaceID))
	}
	s.log.InfoContext(ctx, "topic interface linked", attrs...)

	return t, nil
}

// Deprecate marks a topic as deprecated. Repeated calls keep the first timestamp.
func (s *Service) Deprecate(ctx context.Context, id int64) (*domain.Topic, error) {
	t, err := s.topics.Deprecate(ctx, id, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("deprecate topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic deprecated", slog.Int64("topic_id", t.ID))
	return t, nil
}
