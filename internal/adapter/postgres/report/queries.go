package report

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/wosa-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wosa-backend/internal/domain"
)

const day = 24 * time.Hour

// Rows runs the read-only query behind reportType and returns its rows
// ordered by topic id. Types without a definition return an empty slice.
func (r *Repo) Rows(ctx context.Context, reportType domain.ReportType, now time.Time) ([]domain.ReportRow, error) {
	switch reportType {
	case domain.ReportNoProducers:
		return r.reasonRows(ctx, squirrel.Expr("NOT EXISTS (SELECT 1 FROM topic_producers p WHERE p.topic_id = t.id)"), "No producers")
	case domain.ReportNoConsumers:
		return r.reasonRows(ctx, squirrel.Expr("NOT EXISTS (SELECT 1 FROM topic_consumers c WHERE c.topic_id = t.id)"), "No consumers")
	case domain.ReportStale30Days:
		return r.staleRows(ctx, now.Add(-30*day))
	case domain.ReportStale60Days:
		return r.staleRows(ctx, now.Add(-60*day))
	case domain.ReportStale90Days:
		return r.staleRows(ctx, now.Add(-90*day))
	case domain.ReportNoInterface:
		return r.reasonRows(ctx, squirrel.Eq{"t.interface_id": nil}, "No AC registered")
	case domain.ReportRecentlyUpdated:
		return r.recentlyUpdatedRows(ctx, now.Add(-30*day))
	case domain.ReportBadEnvironment:
		return r.badEnvironmentRows(ctx)
	case domain.ReportMultiProducers, domain.ReportUndocumented:
		return []domain.ReportRow{}, nil
	}
	return nil, fmt.Errorf("report type %d: %w", reportType, domain.ErrValidation)
}

func topics() squirrel.SelectBuilder {
	return postgres.Builder().Select().From("topics t").OrderBy("t.id")
}

func (r *Repo) reasonRows(ctx context.Context, where squirrel.Sqlizer, reason string) ([]domain.ReportRow, error) {
	b := topics().Columns("t.id", "t.name").Where(where)
	return r.collect(ctx, b, func(row scanner) (domain.ReportRow, error) {
		out := domain.ReportRow{Field: "reason", Value: reason}
		err := row.Scan(&out.TopicID, &out.TopicName)
		return out, err
	})
}

func (r *Repo) staleRows(ctx context.Context, cutoff time.Time) ([]domain.ReportRow, error) {
	b := topics().Columns("t.id", "t.name", "t.last_message_date").
		Where(squirrel.Or{
			squirrel.Eq{"t.last_message_date": nil},
			squirrel.Lt{"t.last_message_date": cutoff},
		})
	return r.collect(ctx, b, func(row scanner) (domain.ReportRow, error) {
		var (
			out  = domain.ReportRow{Field: "last_message"}
			last *time.Time
		)
		err := row.Scan(&out.TopicID, &out.TopicName, &last)
		out.Value = last
		return out, err
	})
}

func (r *Repo) recentlyUpdatedRows(ctx context.Context, cutoff time.Time) ([]domain.ReportRow, error) {
	b := topics().Columns("t.id", "t.name", "t.updated_at").
		Where(squirrel.Gt{"t.updated_at": cutoff})
	return r.collect(ctx, b, func(row scanner) (domain.ReportRow, error) {
		var (
			out     = domain.ReportRow{Field: "updated_at"}
			updated time.Time
		)
		err := row.Scan(&out.TopicID, &out.TopicName, &updated)
		out.Value = updated
		return out, err
	})
}

func (r *Repo) badEnvironmentRows(ctx context.Context) ([]domain.ReportRow, error) {
	known := make([]string, 0, len(domain.KnownEnvironments()))
	for _, e := range domain.KnownEnvironments() {
		known = append(known, string(e))
	}

	b := topics().Columns("t.id", "t.name", "t.environment").
		Where(squirrel.Or{
			squirrel.Eq{"t.environment": nil},
			squirrel.NotEq{"t.environment": known},
		})
	return r.collect(ctx, b, func(row scanner) (domain.ReportRow, error) {
		var (
			out = domain.ReportRow{Field: "environment"}
			env *string
		)
		err := row.Scan(&out.TopicID, &out.TopicName, &env)
		out.Value = env
		return out, err
	})
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *Repo) collect(ctx context.Context, b squirrel.SelectBuilder, scan func(scanner) (domain.ReportRow, error)) ([]domain.ReportRow, error) {
	rows, err := postgres.QueryBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, fmt.Errorf("report query: %w", err)
	}
	defer rows.Close()

	out := []domain.ReportRow{}
	for rows.Next() {
		row, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("report query: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("report query: %w", err)
	}
	return out, nil
}
