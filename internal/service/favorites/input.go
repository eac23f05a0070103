package favorites

import "github.com/wahidrahimi/ragavani-backend/internal/domain"

// CopyInput holds the fields of a favorite copy sent directly by the client.
type CopyInput struct {
	Category    string
	Name        string
	Inputs      []int
	Vadi        string
	Samvadi     string
	Description string
	IsPublic    bool
}

// Validate checks all fields and collects all errors.
func (i *CopyInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Category == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "required"})
	}
	if len(i.Inputs) == 0 {
		errs = append(errs, domain.FieldError{Field: "inputs", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i *CopyInput) toDomain() domain.FavoriteRaga {
	return domain.FavoriteRaga{
		Category:    i.Category,
		Name:        i.Name,
		Inputs:      i.Inputs,
		Vadi:        i.Vadi,
		Samvadi:     i.Samvadi,
		Description: i.Description,
		IsPublic:    i.IsPublic,
	}
}

// ReferenceInput identifies the target of a new favorite reference. Source is
// either the catalog tag or another user's id.
type ReferenceInput struct {
	Source string
	RagaID string
}

// Validate checks all fields and collects all errors.
func (i *ReferenceInput) Validate() error {
	var errs []domain.FieldError

	if i.Source == "" {
		errs = append(errs, domain.FieldError{Field: "source", Message: "required"})
	}
	if i.RagaID == "" {
		errs = append(errs, domain.FieldError{Field: "ragaId", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
