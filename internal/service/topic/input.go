package topic

import (
	"github.com/heartmarshall/wosa-backend/internal/domain"
)

// ListInput holds the parameters for listing topics.
type ListInput struct {
	Environment *string
	Page        domain.Page
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	if i.Environment != nil && !domain.Environment(*i.Environment).IsValid() {
		return domain.NewValidationError("environment", "must be one of dev, prod, e2e")
	}
	return nil
}

// LinkInterfaceInput holds the parameters for linking a topic to an interface.
// A nil InterfaceID clears the link.
type LinkInterfaceInput struct {
	TopicID     int64
	InterfaceID *int64
}

// Validate checks all fields and collects all errors.
func (i LinkInterfaceInput) Validate() error {
	var errs []domain.FieldError

	if i.TopicID < 1 {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if i.InterfaceID != nil && *i.InterfaceID < 1 {
		errs = append(errs, domain.FieldError{Field: "interface_id", Message: "must be >= 1"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
