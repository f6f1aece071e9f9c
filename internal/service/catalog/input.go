package catalog

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/wosa-backend/internal/domain"
)

// CreateNamedInput holds the parameters for creating a component or an interface type.
type CreateNamedInput struct {
	Name        string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateNamedInput) Validate() error {
	var errs []domain.FieldError
	errs = appendNameErrors(errs, i.Name, 100)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateInterfaceInput holds the parameters for creating an interface.
type CreateInterfaceInput struct {
	Name                   string
	Description            *string
	ApplicationComponentID int64
	InterfaceTypeID        int64
}

// Validate checks all fields and collects all errors.
func (i CreateInterfaceInput) Validate() error {
	var errs []domain.FieldError
	errs = appendNameErrors(errs, i.Name, 255)

	if i.ApplicationComponentID < 1 {
		errs = append(errs, domain.FieldError{Field: "application_component_id", Message: "required"})
	}
	if i.InterfaceTypeID < 1 {
		errs = append(errs, domain.FieldError{Field: "interface_type_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendNameErrors(errs []domain.FieldError, name string, maxLen int) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > maxLen {
		return append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", maxLen)})
	}
	return errs
}
