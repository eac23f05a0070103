package recording

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

// Delete removes the user's recording.
func (s *Service) Delete(ctx context.Context, userID, recordingID string) error {
	if err := s.checkUser(ctx, userID); err != nil {
		return err
	}
	if recordingID == "" {
		return domain.NewValidationError("recordingId", "required")
	}

	if err := s.recordings.Delete(ctx, userID, recordingID); err != nil {
		return fmt.Errorf("delete recording: %w", err)
	}

	s.log.InfoContext(ctx, "recording deleted",
		slog.String("user_id", userID),
		slog.String("recording_id", recordingID),
	)
	return nil
}
