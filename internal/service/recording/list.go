package recording

import (
	"context"
	"fmt"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

// List returns the user's recordings filtered by visibility. The list may be
// empty; the transport layer decides how to present that.
func (s *Service) List(ctx context.Context, userID string, vis domain.Visibility) ([]domain.Recording, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	recs, err := s.recordings.ListByOwner(ctx, userID, vis)
	if err != nil {
		return nil, fmt.Errorf("list recordings: %w", err)
	}
	return recs, nil
}
