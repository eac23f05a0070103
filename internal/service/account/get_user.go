package account

import (
	"context"
	"fmt"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

// GetUser returns one user profile by id.
func (s *Service) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, domain.NewValidationError("userId", "required")
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
