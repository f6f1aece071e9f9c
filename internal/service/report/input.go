package report

import (
	"fmt"
	"unicode/utf8"

	"github.com/heartmarshall/wosa-backend/internal/domain"
)

// GenerateInput holds the parameters for generating a report.
type GenerateInput struct {
	Type       int
	Parameters map[string]any
}

// maxGeneratedByLen matches reports.generated_by.
const maxGeneratedByLen = 100

// Validate checks all fields and collects all errors.
func (i GenerateInput) Validate() error {
	var errs []domain.FieldError

	if !domain.ReportType(i.Type).IsValid() {
		errs = append(errs, domain.FieldError{
			Field:   "report_type",
			Message: fmt.Sprintf("must be between %d and %d", domain.ReportNoProducers, domain.ReportBadEnvironment),
		})
	}
	if by, ok := i.Parameters["generated_by"].(string); ok && utf8.RuneCountInString(by) > maxGeneratedByLen {
		errs = append(errs, domain.FieldError{Field: "generated_by", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds the parameters for listing reports.
type ListInput struct {
	Type *int
	Page domain.Page
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	if i.Type != nil && !domain.ReportType(*i.Type).IsValid() {
		return domain.NewValidationError("report_type",
			fmt.Sprintf("must be between %d and %d", domain.ReportNoProducers, domain.ReportBadEnvironment))
	}
	return nil
}
