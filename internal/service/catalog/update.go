package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

// Update merges the provided fields into an existing raga. Absent fields are
// untouched; the raga must already exist. An empty patch is accepted and
// writes nothing.
func (s *Service) Update(ctx context.Context, id string, patch domain.RagaPatch) error {
	if id == "" {
		return domain.NewValidationError("id", "required")
	}

	if _, err := s.ragas.GetByID(ctx, id); err != nil {
		return fmt.Errorf("get raga: %w", err)
	}

	if patch.IsEmpty() {
		return nil
	}

	if err := s.ragas.Merge(ctx, id, patch); err != nil {
		return fmt.Errorf("update raga: %w", err)
	}

	s.log.InfoContext(ctx, "raga updated", slog.String("raga_id", id))
	return nil
}
