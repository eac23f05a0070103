package recording

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

// Create stores a recording for the user. The creation timestamp defaults to
// the current time when the client does not send one.
func (s *Service) Create(ctx context.Context, userID string, input CreateInput) (*domain.Recording, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	createdAt := s.now().UTC()
	if input.DateCreated != nil {
		createdAt = input.DateCreated.UTC()
	}

	rec := &domain.Recording{
		Name:        input.Name,
		IsPublic:    *input.IsPublic,
		URL:         input.URL,
		Duration:    *input.Duration,
		DateCreated: createdAt,
	}

	created, err := s.recordings.Create(ctx, userID, rec)
	if err != nil {
		return nil, fmt.Errorf("create recording: %w", err)
	}

	s.log.InfoContext(ctx, "recording created",
		slog.String("user_id", userID),
		slog.String("recording_id", created.ID),
	)
	return created, nil
}
