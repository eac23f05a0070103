// Package raga implements the catalog repository. The catalog is a single
// shared table; documents are created with server-generated ids and mutated
// by partial merge only.
package raga

import (
	"context"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/wahidrahimi/ragavani-backend/internal/adapter/surreal"
	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

const table = "raga"

// record is the stored shape of a catalog raga. The id field doubles as the
// record id and the document's own id attribute.
type record struct {
	ID          *models.RecordID `json:"id,omitempty"`
	Category    string           `json:"category"`
	Name        string           `json:"name"`
	Inputs      []int            `json:"inputs"`
	Vadi        string           `json:"vadi"`
	Samvadi     string           `json:"samvadi"`
	Description string           `json:"description"`
}

func toDomain(rec record) domain.Raga {
	return domain.Raga{
		ID:          surreal.IDString(rec.ID),
		Category:    rec.Category,
		Name:        rec.Name,
		Inputs:      rec.Inputs,
		Vadi:        rec.Vadi,
		Samvadi:     rec.Samvadi,
		Description: rec.Description,
	}
}

// Repo provides catalog persistence backed by SurrealDB.
type Repo struct {
	store *surreal.Store
}

// New creates a catalog repository.
func New(store *surreal.Store) *Repo {
	return &Repo{store: store}
}

// Create writes a new raga with a generated id stamped into the document.
func (r *Repo) Create(ctx context.Context, raga *domain.Raga) (*domain.Raga, error) {
	rid := surreal.NewRecordID(table)

	created, err := surrealdb.Create[record](ctx, r.store.DB(), rid, record{
		Category:    raga.Category,
		Name:        raga.Name,
		Inputs:      raga.Inputs,
		Vadi:        raga.Vadi,
		Samvadi:     raga.Samvadi,
		Description: raga.Description,
	})
	if err != nil {
		return nil, surreal.MapError(err, "raga", surreal.IDString(&rid))
	}

	out := toDomain(*created)
	return &out, nil
}

// CreateBatch writes all ragas in a single INSERT statement. The statement is
// atomic on the server: either every document is written or none are.
func (r *Repo) CreateBatch(ctx context.Context, ragas []domain.Raga) error {
	recs := make([]record, len(ragas))
	for i, raga := range ragas {
		rid := surreal.NewRecordID(table)
		recs[i] = record{
			ID:          &rid,
			Category:    raga.Category,
			Name:        raga.Name,
			Inputs:      raga.Inputs,
			Vadi:        raga.Vadi,
			Samvadi:     raga.Samvadi,
			Description: raga.Description,
		}
	}

	if _, err := surrealdb.Insert[record](ctx, r.store.DB(), table, recs); err != nil {
		return surreal.MapError(err, "raga", "batch")
	}
	return nil
}

// GetByID returns a catalog raga. Returns domain.ErrNotFound if absent.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Raga, error) {
	rid := models.NewRecordID(table, id)

	rec, err := surrealdb.Select[record](ctx, r.store.DB(), rid)
	if err != nil {
		return nil, surreal.MapError(err, "raga", id)
	}
	if rec == nil || rec.ID == nil {
		return nil, domain.NewNotFoundError("raga", id)
	}

	out := toDomain(*rec)
	return &out, nil
}

// List returns every raga in the catalog.
func (r *Repo) List(ctx context.Context) ([]domain.Raga, error) {
	recs, err := surrealdb.Select[[]record](ctx, r.store.DB(), models.Table(table))
	if err != nil {
		return nil, surreal.MapError(err, "raga", "all")
	}
	if recs == nil {
		return []domain.Raga{}, nil
	}

	ragas := make([]domain.Raga, len(*recs))
	for i, rec := range *recs {
		ragas[i] = toDomain(rec)
	}
	return ragas, nil
}

// Merge applies a partial update. Fields absent from the patch are left
// untouched. The caller is responsible for the prior existence check.
func (r *Repo) Merge(ctx context.Context, id string, patch domain.RagaPatch) error {
	rid := models.NewRecordID(table, id)

	fields := map[string]any{}
	if patch.Category != nil {
		fields["category"] = *patch.Category
	}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Inputs != nil {
		fields["inputs"] = patch.Inputs
	}
	if patch.Vadi != nil {
		fields["vadi"] = *patch.Vadi
	}
	if patch.Samvadi != nil {
		fields["samvadi"] = *patch.Samvadi
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}

	if _, err := surrealdb.Merge[record](ctx, r.store.DB(), rid, fields); err != nil {
		return surreal.MapError(err, "raga", id)
	}
	return nil
}

// Delete removes a catalog raga. The caller performs the existence check;
// the store treats deleting an absent record as a no-op.
func (r *Repo) Delete(ctx context.Context, id string) error {
	rid := models.NewRecordID(table, id)

	if _, err := surrealdb.Delete[record](ctx, r.store.DB(), rid); err != nil {
		return surreal.MapError(err, "raga", id)
	}
	return nil
}
