package user

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/wosa-backend/internal/domain"
)

// CreateInput holds parameters for creating a user.
type CreateInput struct {
	Name  string
	Email string
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	errs = validateName(errs, i.Name)
	errs = validateEmail(errs, i.Email)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for updating a user.
// All fields are optional (nil = don't change).
type UpdateInput struct {
	Name  *string
	Email *string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == nil && i.Email == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	if i.Email != nil {
		errs = validateEmail(errs, *i.Email)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > 100 {
		return append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	return errs
}

func validateEmail(errs []domain.FieldError, email string) []domain.FieldError {
	email = strings.TrimSpace(email)
	if email == "" {
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if len(email) > 255 {
		return append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}
	return errs
}
