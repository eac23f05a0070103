package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

// Create adds a raga to the catalog. The id is generated server-side and
// stamped into the document in the same write.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Raga, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	raga := input.toDomain()
	created, err := s.ragas.Create(ctx, &raga)
	if err != nil {
		return nil, fmt.Errorf("create raga: %w", err)
	}

	s.log.InfoContext(ctx, "raga created", slog.String("raga_id", created.ID))
	return created, nil
}
