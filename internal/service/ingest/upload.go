package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/wosa-backend/internal/domain"
)

// UploadDocument validates a raw WOSA document and registers it as a pending
// file. The parsed document is returned so callers can process it without
// re-reading the bytes, which are not retained.
func (s *Service) UploadDocument(ctx context.Context, input UploadInput) (*domain.UploadedFile, *domain.Document, error) {
	if err := input.Validate(); err != nil {
		return nil, nil, err
	}

	doc, err := ParseDocument(input.Raw)
	if err != nil {
		return nil, nil, err
	}

	filename := strings.TrimSpace(input.Filename)
	uploadedAt := s.now().UTC()
	name := domain.DerivedFileName(filename, uploadedAt)

	file, err := s.files.Create(ctx, &domain.UploadedFile{
		Name:         name,
		OriginalName: filename,
		UserID:       input.UploaderID,
		FileSize:     int64(len(input.Raw)),
		Status:       domain.FileStatusPending,
		UploadDate:   normalizeTime(uploadedAt),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, nil, domain.NewConflictError("file", name)
		}
		return nil, nil, fmt.Errorf("create file: %w", err)
	}

	s.log.InfoContext(ctx, "document uploaded",
		slog.Int64("file_id", file.ID),
		slog.String("name", file.Name),
		slog.Int("topics", len(doc.Topics)),
	)

	return file, doc, nil
}

// GetFile returns one uploaded file.
func (s *Service) GetFile(ctx context.Context, id int64) (*domain.UploadedFile, error) {
	f, err := s.files.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}
	return f, nil
}

// ListFiles returns uploaded files ordered by id.
func (s *Service) ListFiles(ctx context.Context, page domain.Page) ([]domain.UploadedFile, error) {
	files, err := s.files.List(ctx, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	return files, nil
}
