// Package report implements the report repository: the canned topic queries
// and persistence of generated reports with their items.
package report

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/wosa-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wosa-backend/internal/domain"
)

const reportColumns = "id, report_type, report_name, generated_at, generated_by, parameters, results_count, file_path"

// Repo provides report persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new report repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a report by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Report, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Select(reportColumns).From("reports").Where(squirrel.Eq{"id": id})
	rep, err := scanReport(postgres.QueryRowBuilt(ctx, q, b))
	if err != nil {
		return nil, postgres.MapError(err, "report", id)
	}
	return rep, nil
}

// List returns reports newest first, optionally filtered by type.
func (r *Repo) List(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Select(reportColumns).From("reports").
		OrderBy("generated_at DESC", "id DESC").
		Offset(uint64(filter.Page.Offset)).
		Limit(uint64(filter.Page.Limit))
	if filter.Type != nil {
		b = b.Where(squirrel.Eq{"report_type": int(*filter.Type)})
	}

	rows, err := postgres.QueryBuilt(ctx, q, b)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	reports := []domain.Report{}
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("list reports: %w", err)
		}
		reports = append(reports, *rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return reports, nil
}

// ListItems returns the items of a report in insertion order.
func (r *Repo) ListItems(ctx context.Context, reportID int64) ([]domain.ReportItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().
		Select("id", "report_id", "topic_id", "item_data", "created_at").
		From("report_items").
		Where(squirrel.Eq{"report_id": reportID}).
		OrderBy("id")

	rows, err := postgres.QueryBuilt(ctx, q, b)
	if err != nil {
		return nil, fmt.Errorf("list report items: %w", err)
	}
	defer rows.Close()

	items := []domain.ReportItem{}
	for rows.Next() {
		var (
			it   domain.ReportItem
			data []byte
		)
		if err := rows.Scan(&it.ID, &it.ReportID, &it.TopicID, &data, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("list report items: %w", err)
		}
		if err := json.Unmarshal(data, &it.Data); err != nil {
			return nil, fmt.Errorf("list report items: decode item_data: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list report items: %w", err)
	}
	return items, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts the report and one item per row. Call it inside RunInTx to
// make the report and its items atomic.
func (r *Repo) Create(ctx context.Context, rep *domain.Report, rows []domain.ReportRow) (*domain.Report, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	params := rep.Parameters
	if params == nil {
		params = map[string]any{}
	}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("create report: encode parameters: %w", err)
	}

	b := postgres.Builder().Insert("reports").
		Columns("report_type", "report_name", "generated_at", "generated_by", "parameters", "results_count", "file_path").
		Values(int(rep.Type), rep.Name, rep.GeneratedAt, rep.GeneratedBy, paramsJSON, rep.ResultsCount, rep.FilePath).
		Suffix("RETURNING " + reportColumns)

	created, err := scanReport(postgres.QueryRowBuilt(ctx, q, b))
	if err != nil {
		return nil, postgres.MapError(err, "report", rep.Name)
	}

	if len(rows) == 0 {
		return created, nil
	}

	batch := &pgx.Batch{}
	for _, row := range rows {
		data, err := json.Marshal(row.Payload())
		if err != nil {
			return nil, fmt.Errorf("create report: encode item: %w", err)
		}
		batch.Queue(
			`INSERT INTO report_items (report_id, topic_id, item_data, created_at) VALUES ($1, $2, $3, $4)`,
			created.ID, row.TopicID, data, rep.GeneratedAt,
		)
	}

	br := q.SendBatch(ctx, batch)
	for range rows {
		if _, err := br.Exec(); err != nil {
			// The first failed statement is the error reported.
			_ = br.Close()
			return nil, postgres.MapError(err, "report items", created.ID)
		}
	}
	if err := br.Close(); err != nil {
		return nil, postgres.MapError(err, "report items", created.ID)
	}

	return created, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanReport(row pgx.Row) (*domain.Report, error) {
	var (
		rep    domain.Report
		typ    int
		params []byte
	)
	if err := row.Scan(
		&rep.ID, &typ, &rep.Name, &rep.GeneratedAt, &rep.GeneratedBy, &params, &rep.ResultsCount, &rep.FilePath,
	); err != nil {
		return nil, err
	}
	rep.Type = domain.ReportType(typ)
	if err := json.Unmarshal(params, &rep.Parameters); err != nil {
		return nil, fmt.Errorf("decode parameters: %w", err)
	}
	return &rep, nil
}
