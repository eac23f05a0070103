// Package recording implements the per-user recording repository. Every
// document carries an owner link to its user record; all reads and deletes
// are scoped by that owner.
package recording

import (
	"context"
	"time"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/wahidrahimi/ragavani-backend/internal/adapter/surreal"
	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

const table = "recording"

type record struct {
	ID          *models.RecordID `json:"id,omitempty"`
	Owner       *models.RecordID `json:"owner,omitempty"`
	Name        string           `json:"name"`
	IsPublic    bool             `json:"is_public"`
	URL         string           `json:"URL"`
	Duration    float64          `json:"duration"`
	DateCreated time.Time        `json:"date_created"`
}

func toDomain(rec record) domain.Recording {
	return domain.Recording{
		ID:          surreal.IDString(rec.ID),
		Name:        rec.Name,
		IsPublic:    rec.IsPublic,
		URL:         rec.URL,
		Duration:    rec.Duration,
		DateCreated: rec.DateCreated,
	}
}

// Repo provides recording persistence backed by SurrealDB.
type Repo struct {
	store *surreal.Store
}

// New creates a recording repository.
func New(store *surreal.Store) *Repo {
	return &Repo{store: store}
}

// Create writes a recording owned by the given user and returns it with its
// generated id.
func (r *Repo) Create(ctx context.Context, ownerID string, rec *domain.Recording) (*domain.Recording, error) {
	rid := surreal.NewRecordID(table)
	owner := models.NewRecordID("user", ownerID)

	created, err := surrealdb.Create[record](ctx, r.store.DB(), rid, record{
		Owner:       &owner,
		Name:        rec.Name,
		IsPublic:    rec.IsPublic,
		URL:         rec.URL,
		Duration:    rec.Duration,
		DateCreated: rec.DateCreated,
	})
	if err != nil {
		return nil, surreal.MapError(err, "recording", surreal.IDString(&rid))
	}

	out := toDomain(*created)
	return &out, nil
}

// ListByOwner returns the user's recordings, optionally filtered by
// visibility. Order is unspecified.
func (r *Repo) ListByOwner(ctx context.Context, ownerID string, vis domain.Visibility) ([]domain.Recording, error) {
	sql := "SELECT * FROM recording WHERE owner = $owner"
	vars := map[string]any{
		"owner": models.NewRecordID("user", ownerID),
	}
	if vis != domain.VisibilityAll {
		sql += " AND is_public = $public"
		vars["public"] = vis == domain.VisibilityPublic
	}

	res, err := surrealdb.Query[[]record](ctx, r.store.DB(), sql, vars)
	if err != nil {
		return nil, surreal.MapError(err, "recording", ownerID)
	}

	var recs []domain.Recording
	if res != nil && len(*res) > 0 {
		for _, rec := range (*res)[0].Result {
			recs = append(recs, toDomain(rec))
		}
	}
	if recs == nil {
		recs = []domain.Recording{}
	}
	return recs, nil
}

// ListPublic returns every public recording across all users together with
// the owner id each belongs to.
func (r *Repo) ListPublic(ctx context.Context) (map[string][]domain.Recording, error) {
	const sql = "SELECT * FROM recording WHERE is_public = true"

	res, err := surrealdb.Query[[]record](ctx, r.store.DB(), sql, nil)
	if err != nil {
		return nil, surreal.MapError(err, "recording", "public")
	}

	byOwner := map[string][]domain.Recording{}
	if res != nil && len(*res) > 0 {
		for _, rec := range (*res)[0].Result {
			owner := surreal.IDString(rec.Owner)
			byOwner[owner] = append(byOwner[owner], toDomain(rec))
		}
	}
	return byOwner, nil
}

// Delete removes the user's recording. Returns domain.ErrNotFound when no
// recording with that id belongs to the user.
func (r *Repo) Delete(ctx context.Context, ownerID, id string) error {
	const sql = "DELETE FROM recording WHERE id = $id AND owner = $owner RETURN BEFORE"

	res, err := surrealdb.Query[[]record](ctx, r.store.DB(), sql, map[string]any{
		"id":    models.NewRecordID(table, id),
		"owner": models.NewRecordID("user", ownerID),
	})
	if err != nil {
		return surreal.MapError(err, "recording", id)
	}
	if res == nil || len(*res) == 0 || len((*res)[0].Result) == 0 {
		return domain.NewNotFoundError("recording", id)
	}
	return nil
}
