package report

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

// AllUsersInfo returns every user together with their public recordings and
// their favorite-raga copies. Per-user favorite fetches run concurrently;
// user order is preserved in the result.
func (s *Service) AllUsersInfo(ctx context.Context) ([]domain.UserInfo, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	byOwner, err := s.recordings.ListPublic(ctx)
	if err != nil {
		return nil, fmt.Errorf("list public recordings: %w", err)
	}

	out := make([]domain.UserInfo, len(users))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(infoConcurrency)
	for i, u := range users {
		g.Go(func() error {
			favs, err := s.favorites.ListCopies(gctx, u.UserID)
			if err != nil {
				return fmt.Errorf("list favorites for %s: %w", u.UserID, err)
			}

			recs := byOwner[u.UserID]
			if recs == nil {
				recs = []domain.Recording{}
			}
			out[i] = domain.UserInfo{
				User:          u,
				Recordings:    recs,
				FavoriteRagas: favs,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
