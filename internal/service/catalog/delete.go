package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

// Delete removes a catalog raga. The raga must exist. Copies made by users
// are independent documents and are never touched.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "required")
	}

	if _, err := s.ragas.GetByID(ctx, id); err != nil {
		return fmt.Errorf("get raga: %w", err)
	}

	if err := s.ragas.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete raga: %w", err)
	}

	s.log.InfoContext(ctx, "raga deleted", slog.String("raga_id", id))
	return nil
}
