// Package account implements user signup and profile reads. Credentials live
// with the authentication provider; this service only owns the profile
// document merged onto the provider's user record.
package account

import (
	"context"
	"log/slog"
	"time"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type identityProvider interface {
	SignUp(ctx context.Context, email, password string) (string, error)
}

type userRepo interface {
	SaveProfile(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the account business logic.
type Service struct {
	log      *slog.Logger
	identity identityProvider
	users    userRepo
	now      func() time.Time
}

// NewService creates a new Account service.
func NewService(logger *slog.Logger, identity identityProvider, users userRepo) *Service {
	return &Service{
		log:      logger.With("service", "account"),
		identity: identity,
		users:    users,
		now:      time.Now,
	}
}
