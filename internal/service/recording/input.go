package recording

import (
	"time"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

// CreateInput holds the fields of a new recording. IsPublic and Duration are
// pointers so that absent and zero-valued fields can be told apart.
type CreateInput struct {
	Name        string
	IsPublic    *bool
	URL         string
	Duration    *float64
	DateCreated *time.Time
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.IsPublic == nil {
		errs = append(errs, domain.FieldError{Field: "is_public", Message: "required"})
	}
	if i.URL == "" {
		errs = append(errs, domain.FieldError{Field: "URL", Message: "required"})
	}
	switch {
	case i.Duration == nil:
		errs = append(errs, domain.FieldError{Field: "duration", Message: "required"})
	case *i.Duration < 0:
		errs = append(errs, domain.FieldError{Field: "duration", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
