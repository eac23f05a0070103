// Package version implements the collection version tag repository.
package version

import (
	"context"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/wahidrahimi/ragavani-backend/internal/adapter/surreal"
	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

const table = "version"

type record struct {
	ID      *models.RecordID `json:"id,omitempty"`
	Name    string           `json:"name"`
	Version string           `json:"version"`
}

func toDomain(rec record) domain.VersionRecord {
	return domain.VersionRecord{
		ID:      surreal.IDString(rec.ID),
		Name:    rec.Name,
		Version: rec.Version,
	}
}

// Repo provides version tag persistence backed by SurrealDB.
type Repo struct {
	store *surreal.Store
}

// New creates a version repository.
func New(store *surreal.Store) *Repo {
	return &Repo{store: store}
}

// Create writes a version tag. Tags accumulate; creating a tag never
// replaces earlier tags for the same name.
func (r *Repo) Create(ctx context.Context, v *domain.VersionRecord) (*domain.VersionRecord, error) {
	rid := surreal.NewRecordID(table)

	created, err := surrealdb.Create[record](ctx, r.store.DB(), rid, record{
		Name:    v.Name,
		Version: v.Version,
	})
	if err != nil {
		return nil, surreal.MapError(err, "version", surreal.IDString(&rid))
	}

	out := toDomain(*created)
	return &out, nil
}

// ListByName returns every version tag recorded for the given name.
func (r *Repo) ListByName(ctx context.Context, name string) ([]domain.VersionRecord, error) {
	const sql = "SELECT * FROM version WHERE name = $name"

	res, err := surrealdb.Query[[]record](ctx, r.store.DB(), sql, map[string]any{
		"name": name,
	})
	if err != nil {
		return nil, surreal.MapError(err, "version", name)
	}

	tags := []domain.VersionRecord{}
	if res != nil && len(*res) > 0 {
		for _, rec := range (*res)[0].Result {
			tags = append(tags, toDomain(rec))
		}
	}
	return tags, nil
}
