package report

import (
	"context"
	"fmt"

	"github.com/heartmarshall/wosa-backend/internal/domain"
)

// GetReport returns one report.
func (s *Service) GetReport(ctx context.Context, id int64) (*domain.Report, error) {
	rep, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}
	return rep, nil
}

// ListReports returns reports newest first.
func (s *Service) ListReports(ctx context.Context, input ListInput) ([]domain.Report, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.ReportFilter{Page: input.Page.Normalize()}
	if input.Type != nil {
		t := domain.ReportType(*input.Type)
		filter.Type = &t
	}

	reports, err := s.reports.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return reports, nil
}

// ListReportItems returns the items of an existing report.
func (s *Service) ListReportItems(ctx context.Context, reportID int64) ([]domain.ReportItem, error) {
	if _, err := s.reports.GetByID(ctx, reportID); err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}

	items, err := s.reports.ListItems(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("list report items: %w", err)
	}
	return items, nil
}
