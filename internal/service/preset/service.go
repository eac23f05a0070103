// Package preset implements per-user instrument preset management.
package preset

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type presetRepo interface {
	Create(ctx context.Context, ownerID string, p *domain.Preset) (*domain.Preset, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Preset, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the preset business logic.
type Service struct {
	log     *slog.Logger
	users   userRepo
	presets presetRepo
}

// NewService creates a new Preset service.
func NewService(logger *slog.Logger, users userRepo, presets presetRepo) *Service {
	return &Service{
		log:     logger.With("service", "preset"),
		users:   users,
		presets: presets,
	}
}

func (s *Service) checkUser(ctx context.Context, userID string) error {
	if userID == "" {
		return domain.NewValidationError("userId", "required")
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return err
	}
	return nil
}

// CreateInput holds the fields of a new preset.
type CreateInput struct {
	Name   string
	Pitch  string
	Tempo  float64
	Volume float64
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Pitch == "" {
		errs = append(errs, domain.FieldError{Field: "pitch", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Create stores a preset for the user.
func (s *Service) Create(ctx context.Context, userID string, input CreateInput) (*domain.Preset, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p := &domain.Preset{
		Name:   input.Name,
		Pitch:  input.Pitch,
		Tempo:  input.Tempo,
		Volume: input.Volume,
	}
	created, err := s.presets.Create(ctx, userID, p)
	if err != nil {
		return nil, fmt.Errorf("create preset: %w", err)
	}

	s.log.InfoContext(ctx, "preset created",
		slog.String("user_id", userID),
		slog.String("preset_id", created.ID),
	)
	return created, nil
}

// List returns the user's presets; an empty list is a normal outcome.
func (s *Service) List(ctx context.Context, userID string) ([]domain.Preset, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	presets, err := s.presets.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	return presets, nil
}

// Delete removes the user's preset.
func (s *Service) Delete(ctx context.Context, userID, presetID string) error {
	if err := s.checkUser(ctx, userID); err != nil {
		return err
	}
	if presetID == "" {
		return domain.NewValidationError("presetId", "required")
	}

	if err := s.presets.Delete(ctx, userID, presetID); err != nil {
		return fmt.Errorf("delete preset: %w", err)
	}

	s.log.InfoContext(ctx, "preset deleted",
		slog.String("user_id", userID),
		slog.String("preset_id", presetID),
	)
	return nil
}
