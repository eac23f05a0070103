package catalog

import (
	"fmt"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

// CreateInput holds the fields of a new catalog raga.
type CreateInput struct {
	Category    string
	Name        string
	Inputs      []int
	Vadi        string
	Samvadi     string
	Description string
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Category == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i *CreateInput) toDomain() domain.Raga {
	return domain.Raga{
		Category:    i.Category,
		Name:        i.Name,
		Inputs:      i.Inputs,
		Vadi:        i.Vadi,
		Samvadi:     i.Samvadi,
		Description: i.Description,
	}
}

// BatchInput holds the ragas of a bulk create.
type BatchInput struct {
	Ragas []CreateInput
}

// Validate checks the batch and every element.
func (i *BatchInput) Validate() error {
	if len(i.Ragas) == 0 {
		return domain.NewValidationError("ragas", "required")
	}

	var errs []domain.FieldError
	for idx, raga := range i.Ragas {
		if raga.Name == "" {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("ragas[%d].name", idx),
				Message: "required",
			})
		}
		if raga.Category == "" {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("ragas[%d].category", idx),
				Message: "required",
			})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
