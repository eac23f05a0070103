package favorites

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

// DeleteReference removes the user's indirection records whose stored target
// matches the catalog pair for the given raga id. Matching compares the
// normalized (collection, id) pair.
func (s *Service) DeleteReference(ctx context.Context, userID, ragaID string) error {
	if err := s.checkUser(ctx, userID); err != nil {
		return err
	}
	if ragaID == "" {
		return domain.NewValidationError("ragaId", "required")
	}

	target := domain.DocRef{Collection: "raga", ID: ragaID}
	if err := s.favorites.DeleteRefByTarget(ctx, userID, target); err != nil {
		return fmt.Errorf("delete favorite reference: %w", err)
	}

	s.log.InfoContext(ctx, "favorite reference deleted",
		slog.String("user_id", userID),
		slog.String("raga_id", ragaID),
	)
	return nil
}
