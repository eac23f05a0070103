package account

import "github.com/wahidrahimi/ragavani-backend/internal/domain"

// SignUpInput holds the signup form fields. All four are required.
type SignUpInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Validate checks all fields and collects all errors.
func (i *SignUpInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}
	if i.FirstName == "" {
		errs = append(errs, domain.FieldError{Field: "firstName", Message: "required"})
	}
	if i.LastName == "" {
		errs = append(errs, domain.FieldError{Field: "lastName", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
