package topic

import (
	"context"
	"fmt"

	"github.com/heartmarshall/wosa-backend/internal/domain"
)

// ListTopics returns topics ordered by id.
func (s *Service) ListTopics(ctx context.Context, input ListInput) ([]domain.Topic, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.TopicFilter{Page: input.Page.Normalize()}
	if input.Environment != nil {
		env := domain.Environment(*input.Environment)
		filter.Environment = &env
	}

	topics, err := s.topics.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}

// GetTopic returns a topic with its member name sets.
func (s *Service) GetTopic(ctx context.Context, id int64) (*domain.TopicDetail, error) {
	t, err := s.topics.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	members, err := s.topics.GetMembers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get topic members: %w", err)
	}

	return &domain.TopicDetail{Topic: *t, Members: members}, nil
}

// MembersByTopicIDs loads member sets for many topics at once.
func (s *Service) MembersByTopicIDs(ctx context.Context, ids []int64) (map[int64]domain.TopicMembers, error) {
	members, err := s.topics.GetMembersByTopicIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load topic members: %w", err)
	}
	return members, nil
}

// TopicHistory returns the change log of a topic, newest first.
// A non-positive limit selects DefaultHistoryLimit.
func (s *Service) TopicHistory(ctx context.Context, id int64, limit int) ([]domain.TopicHistory, error) {
	if _, err := s.topics.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	history, err := s.topics.ListHistory(ctx, id, limit)
	if err != nil {
		return nil, fmt.Errorf("list topic history: %w", err)
	}
	return history, nil
}
