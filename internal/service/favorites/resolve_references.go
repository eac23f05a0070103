package favorites

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

// ResolveReferences reads the user's indirection records and dereferences
// each one with an independent fetch. Fetches run concurrently; order of the
// stored references is preserved in the result. Targets deleted since the
// reference was stored are counted as unresolved rather than failing the
// whole read. Zero stored references resolve to an empty result, not an
// error.
func (s *Service) ResolveReferences(ctx context.Context, userID string) (*domain.ResolvedFavorites, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	refs, err := s.favorites.ListRefs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorite references: %w", err)
	}

	resolved := make([]*domain.FavoriteRaga, len(refs))
	var unresolved atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveConcurrency)
	for i, ref := range refs {
		g.Go(func() error {
			fav, err := s.favorites.FetchTarget(gctx, ref.RagaRef)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					unresolved.Add(1)
					return nil
				}
				return fmt.Errorf("fetch target %s %s: %w", ref.RagaRef.Collection, ref.RagaRef.ID, err)
			}
			resolved[i] = fav
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &domain.ResolvedFavorites{
		Favorites:  make([]domain.FavoriteRaga, 0, len(refs)),
		Total:      len(refs),
		Unresolved: int(unresolved.Load()),
	}
	for _, fav := range resolved {
		if fav != nil {
			out.Favorites = append(out.Favorites, *fav)
		}
	}

	if out.Unresolved > 0 {
		s.log.InfoContext(ctx, "favorite references partially resolved",
			slog.String("user_id", userID),
			slog.Int("total", out.Total),
			slog.Int("unresolved", out.Unresolved),
		)
	}
	return out, nil
}
