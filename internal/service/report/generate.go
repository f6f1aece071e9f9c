package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wosa-backend/internal/domain"
)

// GenerateReport runs the query for the requested type and persists the
// report together with one item per result row.
func (s *Service) GenerateReport(ctx context.Context, input GenerateInput) (*domain.Report, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	reportType := domain.ReportType(input.Type)
	now := s.clock.Now().UTC()

	rows, err := s.reports.Rows(ctx, reportType, now)
	if err != nil {
		return nil, fmt.Errorf("report %d rows: %w", reportType, err)
	}

	params := input.Parameters
	if params == nil {
		params = map[string]any{}
	}

	rep := &domain.Report{
		Type:         reportType,
		Name:         reportType.Name(),
		GeneratedAt:  now,
		GeneratedBy:  generatedBy(params),
		Parameters:   params,
		ResultsCount: len(rows),
	}

	var created *domain.Report
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.reports.Create(txCtx, rep, rows)
		if createErr != nil {
			return fmt.Errorf("create report: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "report generated",
		slog.Int64("report_id", created.ID),
		slog.Int("report_type", int(reportType)),
		slog.Int("results", created.ResultsCount),
	)

	return created, nil
}

func generatedBy(params map[string]any) *string {
	v, ok := params["generated_by"].(string)
	if !ok {
		return nil
	}
	return &v
}
