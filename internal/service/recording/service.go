// Package recording implements per-user recording management. Every
// operation verifies the parent user exists before touching the
// sub-collection.
package recording

import (
	"context"
	"log/slog"
	"time"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type recordingRepo interface {
	Create(ctx context.Context, ownerID string, rec *domain.Recording) (*domain.Recording, error)
	ListByOwner(ctx context.Context, ownerID string, vis domain.Visibility) ([]domain.Recording, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the recording business logic.
type Service struct {
	log        *slog.Logger
	users      userRepo
	recordings recordingRepo
	now        func() time.Time
}

// NewService creates a new Recording service.
func NewService(logger *slog.Logger, users userRepo, recordings recordingRepo) *Service {
	return &Service{
		log:        logger.With("service", "recording"),
		users:      users,
		recordings: recordings,
		now:        time.Now,
	}
}

func (s *Service) checkUser(ctx context.Context, userID string) error {
	if userID == "" {
		return domain.NewValidationError("userId", "required")
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return err
	}
	return nil
}
