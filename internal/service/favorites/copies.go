package favorites

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

// AddCopy stores a client-supplied favorite copy with a generated id.
func (s *Service) AddCopy(ctx context.Context, userID string, input CopyInput) (*domain.FavoriteRaga, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	fav := input.toDomain()
	created, err := s.favorites.CreateCopy(ctx, userID, &fav)
	if err != nil {
		return nil, fmt.Errorf("create favorite copy: %w", err)
	}

	s.log.InfoContext(ctx, "favorite copy added",
		slog.String("user_id", userID),
		slog.String("favorite_id", created.ID),
	)
	return created, nil
}

// ListCopies returns the user's favorite copies. The list may be empty; the
// transport layer decides how to present that.
func (s *Service) ListCopies(ctx context.Context, userID string) ([]domain.FavoriteRaga, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	favs, err := s.favorites.ListCopies(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorite copies: %w", err)
	}
	return favs, nil
}

// DeleteCopy removes one of the user's favorite copies. The rest of the
// user's favorites are untouched whether or not the copy existed.
func (s *Service) DeleteCopy(ctx context.Context, userID, favoriteID string) error {
	if err := s.checkUser(ctx, userID); err != nil {
		return err
	}
	if favoriteID == "" {
		return domain.NewValidationError("favoriteId", "required")
	}

	if err := s.favorites.DeleteCopy(ctx, userID, favoriteID); err != nil {
		return fmt.Errorf("delete favorite copy: %w", err)
	}

	s.log.InfoContext(ctx, "favorite copy deleted",
		slog.String("user_id", userID),
		slog.String("favorite_id", favoriteID),
	)
	return nil
}

// AddFromCatalog copies a catalog raga into the user's favorites under the
// raga's own id. Favoriting the same raga again replaces the earlier copy.
// The copy is independent afterwards: catalog edits and deletes never reach it.
func (s *Service) AddFromCatalog(ctx context.Context, userID, ragaID string) error {
	if ragaID == "" {
		return domain.NewValidationError("ragaId", "required")
	}

	raga, err := s.catalog.GetByID(ctx, ragaID)
	if err != nil {
		return fmt.Errorf("get raga: %w", err)
	}
	if err := s.checkUser(ctx, userID); err != nil {
		return err
	}

	fav := domain.FavoriteRaga{
		Category:    raga.Category,
		Name:        raga.Name,
		Inputs:      raga.Inputs,
		Vadi:        raga.Vadi,
		Samvadi:     raga.Samvadi,
		Description: raga.Description,
	}
	if _, err := s.favorites.PutCopy(ctx, userID, ragaID, &fav); err != nil {
		return fmt.Errorf("copy raga to favorites: %w", err)
	}

	s.log.InfoContext(ctx, "catalog raga copied to favorites",
		slog.String("user_id", userID),
		slog.String("raga_id", ragaID),
	)
	return nil
}
