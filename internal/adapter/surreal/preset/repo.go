// Package preset implements the per-user instrument preset repository.
package preset

import (
	"context"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/wahidrahimi/ragavani-backend/internal/adapter/surreal"
	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

const table = "preset"

type record struct {
	ID     *models.RecordID `json:"id,omitempty"`
	Owner  *models.RecordID `json:"owner,omitempty"`
	Name   string           `json:"name"`
	Pitch  string           `json:"pitch"`
	Tempo  float64          `json:"tempo"`
	Volume float64          `json:"volume"`
}

func toDomain(rec record) domain.Preset {
	return domain.Preset{
		ID:     surreal.IDString(rec.ID),
		Name:   rec.Name,
		Pitch:  rec.Pitch,
		Tempo:  rec.Tempo,
		Volume: rec.Volume,
	}
}

// Repo provides preset persistence backed by SurrealDB.
type Repo struct {
	store *surreal.Store
}

// New creates a preset repository.
func New(store *surreal.Store) *Repo {
	return &Repo{store: store}
}

// Create writes a preset owned by the given user.
func (r *Repo) Create(ctx context.Context, ownerID string, p *domain.Preset) (*domain.Preset, error) {
	rid := surreal.NewRecordID(table)
	owner := models.NewRecordID("user", ownerID)

	created, err := surrealdb.Create[record](ctx, r.store.DB(), rid, record{
		Owner:  &owner,
		Name:   p.Name,
		Pitch:  p.Pitch,
		Tempo:  p.Tempo,
		Volume: p.Volume,
	})
	if err != nil {
		return nil, surreal.MapError(err, "preset", surreal.IDString(&rid))
	}

	out := toDomain(*created)
	return &out, nil
}

// ListByOwner returns the user's presets.
func (r *Repo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Preset, error) {
	const sql = "SELECT * FROM preset WHERE owner = $owner"

	res, err := surrealdb.Query[[]record](ctx, r.store.DB(), sql, map[string]any{
		"owner": models.NewRecordID("user", ownerID),
	})
	if err != nil {
		return nil, surreal.MapError(err, "preset", ownerID)
	}

	presets := []domain.Preset{}
	if res != nil && len(*res) > 0 {
		for _, rec := range (*res)[0].Result {
			presets = append(presets, toDomain(rec))
		}
	}
	return presets, nil
}

// Delete removes the user's preset. Returns domain.ErrNotFound when no
// preset with that id belongs to the user.
func (r *Repo) Delete(ctx context.Context, ownerID, id string) error {
	const sql = "DELETE FROM preset WHERE id = $id AND owner = $owner RETURN BEFORE"

	res, err := surrealdb.Query[[]record](ctx, r.store.DB(), sql, map[string]any{
		"id":    models.NewRecordID(table, id),
		"owner": models.NewRecordID("user", ownerID),
	})
	if err != nil {
		return surreal.MapError(err, "preset", id)
	}
	if res == nil || len(*res) == 0 || len((*res)[0].Result) == 0 {
		return domain.NewNotFoundError("preset", id)
	}
	return nil
}
