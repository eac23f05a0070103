package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

// CreateBatch adds multiple ragas in one atomic write: either every raga is
// stored or none are.
func (s *Service) CreateBatch(ctx context.Context, input BatchInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	ragas := make([]domain.Raga, len(input.Ragas))
	for i, in := range input.Ragas {
		ragas[i] = in.toDomain()
	}

	if err := s.ragas.CreateBatch(ctx, ragas); err != nil {
		return fmt.Errorf("create raga batch: %w", err)
	}

	s.log.InfoContext(ctx, "raga batch created", slog.Int("count", len(ragas)))
	return nil
}
