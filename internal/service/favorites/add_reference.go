package favorites

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

// AddReference stores an indirection record pointing at a raga in the catalog
// or at another user's favorite copy. The verification chain fails at the
// first missing link: owner, then the source-specific target checks. Only the
// normalized (collection, id) pair is persisted.
func (s *Service) AddReference(ctx context.Context, userID string, input ReferenceInput) (*domain.FavoriteRagaRef, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	target, err := s.resolveSource(ctx, input)
	if err != nil {
		return nil, err
	}

	ref, err := s.favorites.CreateRef(ctx, userID, target, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("create favorite reference: %w", err)
	}

	s.log.InfoContext(ctx, "favorite reference added",
		slog.String("user_id", userID),
		slog.String("target_collection", target.Collection),
		slog.String("target_id", target.ID),
	)
	return ref, nil
}

// resolveSource maps the request's source tag to the stored target pair.
func (s *Service) resolveSource(ctx context.Context, input ReferenceInput) (domain.DocRef, error) {
	if input.Source == domain.CatalogCollection {
		if _, err := s.catalog.GetByID(ctx, input.RagaID); err != nil {
			return domain.DocRef{}, fmt.Errorf("get raga: %w", err)
		}
		return domain.DocRef{Collection: "raga", ID: input.RagaID}, nil
	}

	// Any other source tag names a user whose favorite copy is the target.
	if _, err := s.users.GetByID(ctx, input.Source); err != nil {
		return domain.DocRef{}, fmt.Errorf("get source user: %w", err)
	}
	if _, err := s.favorites.GetCopy(ctx, input.Source, input.RagaID); err != nil {
		return domain.DocRef{}, fmt.Errorf("get source favorite: %w", err)
	}
	return domain.DocRef{Collection: "favorite_raga", ID: input.RagaID}, nil
}
