// Package release implements the free-standing collection version tags.
package release

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

type versionRepo interface {
	Create(ctx context.Context, v *domain.VersionRecord) (*domain.VersionRecord, error)
	ListByName(ctx context.Context, name string) ([]domain.VersionRecord, error)
}

// Service implements the version tag business logic.
type Service struct {
	log      *slog.Logger
	versions versionRepo
}

// NewService creates a new Release service.
func NewService(logger *slog.Logger, versions versionRepo) *Service {
	return &Service{
		log:      logger.With("service", "release"),
		versions: versions,
	}
}

// AddVersionInput holds the fields of a new version tag.
type AddVersionInput struct {
	Name    string
	Version string
}

// Validate checks all fields and collects all errors.
func (i *AddVersionInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Version == "" {
		errs = append(errs, domain.FieldError{Field: "version", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AddVersion records a version tag. Tags accumulate per name.
func (s *Service) AddVersion(ctx context.Context, input AddVersionInput) (*domain.VersionRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.versions.Create(ctx, &domain.VersionRecord{
		Name:    input.Name,
		Version: input.Version,
	})
	if err != nil {
		return nil, fmt.Errorf("create version: %w", err)
	}

	s.log.InfoContext(ctx, "version recorded",
		slog.String("name", created.Name),
		slog.String("version", created.Version),
	)
	return created, nil
}

// GetVersions returns every tag recorded for the collection name.
func (s *Service) GetVersions(ctx context.Context, name string) ([]domain.VersionRecord, error) {
	if name == "" {
		return nil, domain.NewValidationError("collection_name", "required")
	}

	tags, err := s.versions.ListByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	return tags, nil
}
