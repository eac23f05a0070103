package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

// SignUp registers the credentials with the identity provider and merges the
// profile fields onto the provider's user record. If the provider rejects the
// signup (duplicate email) no profile is written and the provider's error is
// returned as-is.
func (s *Service) SignUp(ctx context.Context, input SignUpInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	uid, err := s.identity.SignUp(ctx, input.Email, input.Password)
	if err != nil {
		return "", fmt.Errorf("provider sign up: %w", err)
	}

	user := &domain.User{
		UserID:      uid,
		Email:       input.Email,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		DateCreated: s.now().UTC(),
	}
	if err := s.users.SaveProfile(ctx, user); err != nil {
		return "", fmt.Errorf("save profile: %w", err)
	}

	s.log.InfoContext(ctx, "user signed up", slog.String("user_id", uid))
	return uid, nil
}
