package ingest

import (
	"strings"

	"github.com/heartmarshall/wosa-backend/internal/domain"
)

// UploadInput holds the parameters for registering a WOSA document.
type UploadInput struct {
	Filename   string
	UploaderID *string
	Raw        []byte
}

// Validate checks all fields and collects all errors.
func (i UploadInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Filename)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "filename", Message: "required"})
	}
	// The derived name appends a 20 character timestamp suffix.
	if len(name) > 235 {
		errs = append(errs, domain.FieldError{Field: "filename", Message: "max 235 characters"})
	}
	if i.UploaderID != nil && len(*i.UploaderID) > 100 {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "max 100 characters"})
	}
	if len(i.Raw) == 0 {
		errs = append(errs, domain.FieldError{Field: "file", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
