// Package report implements the cross-user aggregate views. Both views scan
// every user per request; cost is linear in user count.
package report

import (
	"context"
	"log/slog"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

// infoConcurrency caps the parallel per-user favorite fetches in AllUsersInfo.
const infoConcurrency = 8

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type userRepo interface {
	List(ctx context.Context) ([]domain.User, error)
}

type recordingRepo interface {
	ListPublic(ctx context.Context) (map[string][]domain.Recording, error)
}

type favoriteRepo interface {
	ListCopies(ctx context.Context, ownerID string) ([]domain.FavoriteRaga, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the aggregate view business logic.
type Service struct {
	log        *slog.Logger
	users      userRepo
	recordings recordingRepo
	favorites  favoriteRepo
}

// NewService creates a new Report service.
func NewService(logger *slog.Logger, users userRepo, recordings recordingRepo, favorites favoriteRepo) *Service {
	return &Service{
		log:        logger.With("service", "report"),
		users:      users,
		recordings: recordings,
		favorites:  favorites,
	}
}
