// Package file implements the uploaded-file repository using PostgreSQL.
package file

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/wosa-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wosa-backend/internal/domain"
)

const table = "files"

var columns = []string{
	"id", "name", "original_name", "user_id", "file_size", "status", "upload_date", "processing_date",
}

// Repo provides uploaded-file persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new file repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a file by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.UploadedFile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	f, err := scanFile(postgres.QueryRowBuilt(ctx, q, b))
	if err != nil {
		return nil, postgres.MapError(err, "file", id)
	}
	return f, nil
}

// List returns files ordered by id using offset/limit slicing.
func (r *Repo) List(ctx context.Context, page domain.Page) ([]domain.UploadedFile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Select(columns...).From(table).
		OrderBy("id").
		Offset(uint64(page.Offset)).
		Limit(uint64(page.Limit))

	rows, err := postgres.QueryBuilt(ctx, q, b)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer rows.Close()

	files := []domain.UploadedFile{}
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("list files: %w", err)
		}
		files = append(files, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}

	return files, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new file row. A duplicate name yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, f *domain.UploadedFile) (*domain.UploadedFile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Insert(table).
		Columns("name", "original_name", "user_id", "file_size", "status", "upload_date").
		Values(f.Name, f.OriginalName, f.UserID, f.FileSize, string(f.Status), f.UploadDate).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	created, err := scanFile(postgres.QueryRowBuilt(ctx, q, b))
	if err != nil {
		return nil, postgres.MapError(err, "file", f.Name)
	}
	return created, nil
}

// MarkProcessing moves the file to processing and records the processing time.
func (r *Repo) MarkProcessing(ctx context.Context, id int64, at time.Time) error {
	b := postgres.Builder().Update(table).
		Set("status", string(domain.FileStatusProcessing)).
		Set("processing_date", at).
		Where(squirrel.Eq{"id": id})

	return r.execOne(ctx, b, id)
}

// SetStatus overwrites the lifecycle status of a file.
func (r *Repo) SetStatus(ctx context.Context, id int64, status domain.FileStatus) error {
	b := postgres.Builder().Update(table).
		Set("status", string(status)).
		Where(squirrel.Eq{"id": id})

	return r.execOne(ctx, b, id)
}

func (r *Repo) execOne(ctx context.Context, b squirrel.UpdateBuilder, id int64) error {
	tag, err := postgres.ExecBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return postgres.MapError(err, "file", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("file %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanFile(row pgx.Row) (*domain.UploadedFile, error) {
	var (
		f      domain.UploadedFile
		status string
	)
	if err := row.Scan(
		&f.ID, &f.Name, &f.OriginalName, &f.UserID, &f.FileSize, &status, &f.UploadDate, &f.ProcessingDate,
	); err != nil {
		return nil, err
	}
	f.Status = domain.FileStatus(status)
	return &f, nil
}
