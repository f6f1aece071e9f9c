package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/wosa-backend/internal/domain"
)

type outcome int

const (
	outcomeCreated outcome = iota
	outcomeUpdated
	outcomeUnchanged
)

// ProcessDocument upserts every topic record into the store under fileID.
// A failing record is reported in the result's errors and does not stop
// the run. Each record commits on its own.
func (s *Service) ProcessDocument(ctx context.Context, fileID int64, records []domain.TopicRecord) (*domain.ProcessingResult, error) {
	if _, err := s.files.GetByID(ctx, fileID); err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	if err := s.files.MarkProcessing(ctx, fileID, normalizeTime(s.now())); err != nil {
		return nil, fmt.Errorf("mark processing: %w", err)
	}

	result := &domain.ProcessingResult{
		FileID:          fileID,
		Status:          domain.FileStatusProcessing,
		TopicsProcessed: len(records),
		Errors:          []string{},
		Warnings:        []string{},
	}

	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		if seen[rec.Name] {
			result.Warnings = append(result.Warnings, fmt.Sprintf("topic %s: appears more than once in the document", rec.Name))
		}
		seen[rec.Name] = true

		env := domain.DetectEnvironment(rec.Name)
		if env == nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("topic %s: environment could not be derived from name", rec.Name))
		}

		out, err := s.processRecord(ctx, fileID, rec, env)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("topic %s: %v", rec.Name, err))
			continue
		}
		switch out {
		case outcomeCreated:
			result.TopicsCreated++
		case outcomeUpdated:
			result.TopicsUpdated++
		case outcomeUnchanged:
			result.TopicsUnchanged++
		}
	}

	if err := s.files.SetStatus(ctx, fileID, domain.FileStatusCompleted); err != nil {
		if markErr := s.files.SetStatus(ctx, fileID, domain.FileStatusError); markErr != nil {
			s.log.ErrorContext(ctx, "mark file as error",
				slog.Int64("file_id", fileID),
				slog.String("error", markErr.Error()),
			)
		}
		return nil, domain.NewValidationError("file", fmt.Sprintf("error processing file: %v", err))
	}
	result.Status = domain.FileStatusCompleted

	s.log.InfoContext(ctx, "document processed",
		slog.Int64("file_id", fileID),
		slog.Int("processed", result.TopicsProcessed),
		slog.Int("created", result.TopicsCreated),
		slog.Int("updated", result.TopicsUpdated),
		slog.Int("unchanged", result.TopicsUnchanged),
		slog.Int("errors", len(result.Errors)),
	)

	return result, nil
}

func (s *Service) processRecord(ctx context.Context, fileID int64, rec domain.TopicRecord, env *domain.Environment) (outcome, error) {
	var out outcome
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := normalizeTime(s.now())

		existing, err := s.topics.GetByName(txCtx, rec.Name)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			out = outcomeCreated
			return s.createTopic(txCtx, fileID, rec, env, now)
		case err != nil:
			return fmt.Errorf("lookup: %w", err)
		}

		changed, err := s.updateTopic(txCtx, fileID, existing, rec, now)
		if err != nil {
			return err
		}
		out = outcomeUnchanged
		if changed {
			out = outcomeUpdated
		}
		return nil
	})
	return out, err
}

func (s *Service) createTopic(ctx context.Context, fileID int64, rec domain.TopicRecord, env *domain.Environment, now time.Time) error {
	created, err := s.topics.Create(ctx, &domain.Topic{
		Name:         rec.Name,
		FileID:       fileID,
		Environment:  env,
		BridgedTopic: rec.BridgedTopic,
		Stats:        rec.Stats,
	}, now)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}

	if err := s.topics.AddMembers(ctx, created.ID, rec.Members); err != nil {
		return fmt.Errorf("add members: %w", err)
	}

	err = s.topics.InsertHistory(ctx, domain.TopicHistory{
		TopicID:   created.ID,
		FileID:    fileID,
		Action:    domain.HistoryActionCreated,
		Changes:   map[string]any{"name": rec.Name},
		CreatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	return nil
}

// updateTopic applies the record's statistics to an existing topic.
// Member rows are left as they are.
func (s *Service) updateTopic(ctx context.Context, fileID int64, existing *domain.Topic, rec domain.TopicRecord, now time.Time) (bool, error) {
	changes := existing.ApplyUpdate(rec.BridgedTopic, rec.Stats)
	existing.FileID = fileID

	if _, err := s.topics.Update(ctx, existing, now, len(changes) > 0); err != nil {
		return false, fmt.Errorf("update: %w", err)
	}
	if len(changes) == 0 {
		return false, nil
	}

	err := s.topics.InsertHistory(ctx, domain.TopicHistory{
		TopicID:   existing.ID,
		FileID:    fileID,
		Action:    domain.HistoryActionUpdated,
		Changes:   changes,
		CreatedAt: now,
	})
	if err != nil {
		return false, fmt.Errorf("history: %w", err)
	}
	return true, nil
}
