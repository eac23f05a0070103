package report

import (
	"context"
	"fmt"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

// AllUsersPublicRecordings returns every user that has at least one public
// recording, paired with those recordings. Public recordings are fetched in
// one scan and joined to the user list by owner id.
func (s *Service) AllUsersPublicRecordings(ctx context.Context) ([]domain.UserRecordings, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	byOwner, err := s.recordings.ListPublic(ctx)
	if err != nil {
		return nil, fmt.Errorf("list public recordings: %w", err)
	}

	out := []domain.UserRecordings{}
	for _, u := range users {
		recs := byOwner[u.UserID]
		if len(recs) == 0 {
			continue
		}
		out = append(out, domain.UserRecordings{User: u, Recordings: recs})
	}
	return out, nil
}
