// Package catalog implements the shared raga catalog business logic.
package catalog

import (
	"context"
	"log/slog"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type ragaRepo interface {
	Create(ctx context.Context, raga *domain.Raga) (*domain.Raga, error)
	CreateBatch(ctx context.Context, ragas []domain.Raga) error
	GetByID(ctx context.Context, id string) (*domain.Raga, error)
	List(ctx context.Context) ([]domain.Raga, error)
	Merge(ctx context.Context, id string, patch domain.RagaPatch) error
	Delete(ctx context.Context, id string) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the catalog business logic.
type Service struct {
	log   *slog.Logger
	ragas ragaRepo
}

// NewService creates a new Catalog service.
func NewService(logger *slog.Logger, ragas ragaRepo) *Service {
	return &Service{
		log:   logger.With("service", "catalog"),
		ragas: ragas,
	}
}
