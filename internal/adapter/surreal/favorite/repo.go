// Package favorite implements persistence for the two favorite shapes: full
// per-user copies of ragas and lightweight references pointing at documents
// in other collections. Both tables are owner-scoped.
package favorite

import (
	"context"
	"fmt"
	"time"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/wahidrahimi/ragavani-backend/internal/adapter/surreal"
	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

const (
	copyTable = "favorite_raga"
	refTable  = "favorite_raga_ref"
)

type copyRecord struct {
	ID          *models.RecordID `json:"id,omitempty"`
	Owner       *models.RecordID `json:"owner,omitempty"`
	Category    string           `json:"category"`
	Name        string           `json:"name"`
	Inputs      []int            `json:"inputs"`
	Vadi        string           `json:"vadi"`
	Samvadi     string           `json:"samvadi"`
	Description string           `json:"description"`
	IsPublic    bool             `json:"is_public,omitempty"`
}

type refRecord struct {
	ID          *models.RecordID `json:"id,omitempty"`
	Owner       *models.RecordID `json:"owner,omitempty"`
	RagaRef     *models.RecordID `json:"raga_ref,omitempty"`
	DateCreated time.Time        `json:"date_created"`
}

func copyToDomain(rec copyRecord) domain.FavoriteRaga {
	return domain.FavoriteRaga{
		ID:          surreal.IDString(rec.ID),
		Category:    rec.Category,
		Name:        rec.Name,
		Inputs:      rec.Inputs,
		Vadi:        rec.Vadi,
		Samvadi:     rec.Samvadi,
		Description: rec.Description,
		IsPublic:    rec.IsPublic,
	}
}

func refToDomain(rec refRecord) domain.FavoriteRagaRef {
	return domain.FavoriteRagaRef{
		ID:          surreal.IDString(rec.ID),
		RagaRef:     surreal.ToDocRef(rec.RagaRef),
		DateCreated: rec.DateCreated,
	}
}

// Repo provides favorite persistence backed by SurrealDB.
type Repo struct {
	store *surreal.Store
}

// New creates a favorite repository.
func New(store *surreal.Store) *Repo {
	return &Repo{store: store}
}

// CreateCopy writes a favorite copy with a generated id.
func (r *Repo) CreateCopy(ctx context.Context, ownerID string, fav *domain.FavoriteRaga) (*domain.FavoriteRaga, error) {
	rid := surreal.NewRecordID(copyTable)
	return r.writeCopy(ctx, rid, ownerID, fav, false)
}

// PutCopy writes a favorite copy under the given id, overwriting any copy
// already stored there. Copy-from-catalog keeps the catalog document's id so
// re-favoriting the same raga replaces the earlier copy.
func (r *Repo) PutCopy(ctx context.Context, ownerID, id string, fav *domain.FavoriteRaga) (*domain.FavoriteRaga, error) {
	rid := models.NewRecordID(copyTable, id)
	return r.writeCopy(ctx, rid, ownerID, fav, true)
}

func (r *Repo) writeCopy(ctx context.Context, rid models.RecordID, ownerID string, fav *domain.FavoriteRaga, overwrite bool) (*domain.FavoriteRaga, error) {
	owner := models.NewRecordID("user", ownerID)
	rec := copyRecord{
		Owner:       &owner,
		Category:    fav.Category,
		Name:        fav.Name,
		Inputs:      fav.Inputs,
		Vadi:        fav.Vadi,
		Samvadi:     fav.Samvadi,
		Description: fav.Description,
		IsPublic:    fav.IsPublic,
	}

	var (
		written *copyRecord
		err     error
	)
	if overwrite {
		// Upsert, not update: update skips records that do not exist yet,
		// and the first copy of a catalog raga is exactly that case.
		written, err = surrealdb.Upsert[copyRecord](ctx, r.store.DB(), rid, rec)
	} else {
		written, err = surrealdb.Create[copyRecord](ctx, r.store.DB(), rid, rec)
	}
	if err != nil {
		return nil, surreal.MapError(err, "favorite raga", surreal.IDString(&rid))
	}
	if written == nil {
		return nil, fmt.Errorf("write favorite raga %s: no record returned", surreal.IDString(&rid))
	}

	out := copyToDomain(*written)
	return &out, nil
}

// ListCopies returns the user's favorite copies.
func (r *Repo) ListCopies(ctx context.Context, ownerID string) ([]domain.FavoriteRaga, error) {
	const sql = "SELECT * FROM favorite_raga WHERE owner = $owner"

	res, err := surrealdb.Query[[]copyRecord](ctx, r.store.DB(), sql, map[string]any{
		"owner": models.NewRecordID("user", ownerID),
	})
	if err != nil {
		return nil, surreal.MapError(err, "favorite raga", ownerID)
	}

	favs := []domain.FavoriteRaga{}
	if res != nil && len(*res) > 0 {
		for _, rec := range (*res)[0].Result {
			favs = append(favs, copyToDomain(rec))
		}
	}
	return favs, nil
}

// GetCopy returns the user's favorite copy with the given id. Returns
// domain.ErrNotFound when the copy is absent or belongs to another user.
func (r *Repo) GetCopy(ctx context.Context, ownerID, id string) (*domain.FavoriteRaga, error) {
	rid := models.NewRecordID(copyTable, id)

	rec, err := surrealdb.Select[copyRecord](ctx, r.store.DB(), rid)
	if err != nil {
		return nil, surreal.MapError(err, "favorite raga", id)
	}
	if rec == nil || rec.ID == nil {
		return nil, domain.NewNotFoundError("favorite raga", id)
	}
	if surreal.IDString(rec.Owner) != ownerID {
		return nil, domain.NewNotFoundError("favorite raga", id)
	}

	out := copyToDomain(*rec)
	return &out, nil
}

// DeleteCopy removes the user's favorite copy. Returns domain.ErrNotFound
// when no copy with that id belongs to the user.
func (r *Repo) DeleteCopy(ctx context.Context, ownerID, id string) error {
	const sql = "DELETE FROM favorite_raga WHERE id = $id AND owner = $owner RETURN BEFORE"

	res, err := surrealdb.Query[[]copyRecord](ctx, r.store.DB(), sql, map[string]any{
		"id":    models.NewRecordID(copyTable, id),
		"owner": models.NewRecordID("user", ownerID),
	})
	if err != nil {
		return surreal.MapError(err, "favorite raga", id)
	}
	if res == nil || len(*res) == 0 || len((*res)[0].Result) == 0 {
		return domain.NewNotFoundError("favorite raga", id)
	}
	return nil
}

// CreateRef writes a reference pointing at the target document.
func (r *Repo) CreateRef(ctx context.Context, ownerID string, target domain.DocRef, createdAt time.Time) (*domain.FavoriteRagaRef, error) {
	rid := surreal.NewRecordID(refTable)
	owner := models.NewRecordID("user", ownerID)
	targetRID := surreal.FromDocRef(target)

	created, err := surrealdb.Create[refRecord](ctx, r.store.DB(), rid, refRecord{
		Owner:       &owner,
		RagaRef:     &targetRID,
		DateCreated: createdAt,
	})
	if err != nil {
		return nil, surreal.MapError(err, "favorite reference", surreal.IDString(&rid))
	}

	out := refToDomain(*created)
	return &out, nil
}

// ListRefs returns the user's references.
func (r *Repo) ListRefs(ctx context.Context, ownerID string) ([]domain.FavoriteRagaRef, error) {
	const sql = "SELECT * FROM favorite_raga_ref WHERE owner = $owner"

	res, err := surrealdb.Query[[]refRecord](ctx, r.store.DB(), sql, map[string]any{
		"owner": models.NewRecordID("user", ownerID),
	})
	if err != nil {
		return nil, surreal.MapError(err, "favorite reference", ownerID)
	}

	refs := []domain.FavoriteRagaRef{}
	if res != nil && len(*res) > 0 {
		for _, rec := range (*res)[0].Result {
			refs = append(refs, refToDomain(rec))
		}
	}
	return refs, nil
}

// DeleteRefByTarget removes the user's references whose normalized
// (collection, id) pair matches the target. Returns domain.ErrNotFound when
// nothing matched.
func (r *Repo) DeleteRefByTarget(ctx context.Context, ownerID string, target domain.DocRef) error {
	const sql = "DELETE FROM favorite_raga_ref WHERE owner = $owner AND raga_ref = $target RETURN BEFORE"

	res, err := surrealdb.Query[[]refRecord](ctx, r.store.DB(), sql, map[string]any{
		"owner":  models.NewRecordID("user", ownerID),
		"target": surreal.FromDocRef(target),
	})
	if err != nil {
		return surreal.MapError(err, "favorite reference", target.ID)
	}
	if res == nil || len(*res) == 0 || len((*res)[0].Result) == 0 {
		return domain.NewNotFoundError("favorite reference", target.ID)
	}
	return nil
}

// FetchTarget dereferences a stored (collection, id) pair. Used during
// reference resolution; returns domain.ErrNotFound for dangling references.
func (r *Repo) FetchTarget(ctx context.Context, ref domain.DocRef) (*domain.FavoriteRaga, error) {
	rid := surreal.FromDocRef(ref)

	rec, err := surrealdb.Select[copyRecord](ctx, r.store.DB(), rid)
	if err != nil {
		return nil, surreal.MapError(err, ref.Collection, ref.ID)
	}
	if rec == nil || rec.ID == nil {
		return nil, domain.NewNotFoundError(ref.Collection, ref.ID)
	}

	out := copyToDomain(*rec)
	return &out, nil
}
