package catalog

import (
	"context"
	"fmt"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

// Get returns one catalog raga by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Raga, error) {
	if id == "" {
		return nil, domain.NewValidationError("id", "required")
	}

	raga, err := s.ragas.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get raga: %w", err)
	}
	return raga, nil
}

// List returns the whole catalog.
func (s *Service) List(ctx context.Context) ([]domain.Raga, error) {
	ragas, err := s.ragas.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ragas: %w", err)
	}
	return ragas, nil
}
