// Package favorites implements favorite-raga management: full per-user
// copies and indirection records resolved on read.
package favorites

import (
	"context"
	"log/slog"
	"time"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

// resolveConcurrency caps the parallel target fetches during reference
// resolution.
const resolveConcurrency = 8

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type catalogRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Raga, error)
}

type favoriteRepo interface {
	CreateCopy(ctx context.Context, ownerID string, fav *domain.FavoriteRaga) (*domain.FavoriteRaga, error)
	PutCopy(ctx context.Context, ownerID, id string, fav *domain.FavoriteRaga) (*domain.FavoriteRaga, error)
	ListCopies(ctx context.Context, ownerID string) ([]domain.FavoriteRaga, error)
	GetCopy(ctx context.Context, ownerID, id string) (*domain.FavoriteRaga, error)
	DeleteCopy(ctx context.Context, ownerID, id string) error
	CreateRef(ctx context.Context, ownerID string, target domain.DocRef, createdAt time.Time) (*domain.FavoriteRagaRef, error)
	ListRefs(ctx context.Context, ownerID string) ([]domain.FavoriteRagaRef, error)
	DeleteRefByTarget(ctx context.Context, ownerID string, target domain.DocRef) error
	FetchTarget(ctx context.Context, ref domain.DocRef) (*domain.FavoriteRaga, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the favorites business logic.
type Service struct {
	log       *slog.Logger
	users     userRepo
	catalog   catalogRepo
	favorites favoriteRepo
	now       func() time.Time
}

// NewService creates a new Favorites service.
func NewService(logger *slog.Logger, users userRepo, catalog catalogRepo, favorites favoriteRepo) *Service {
	return &Service{
		log:       logger.With("service", "favorites"),
		users:     users,
		catalog:   catalog,
		favorites: favorites,
		now:       time.Now,
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
