// Package user implements the account profile repository. The user record
// itself is created by the record-access signup; this repository merges the
// profile fields onto it and reads profiles back.
package user

import (
	"context"
	"time"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/wahidrahimi/ragavani-backend/internal/adapter/surreal"
	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

const table = "user"

type record struct {
	ID          *models.RecordID `json:"id,omitempty"`
	UserID      string           `json:"user_id"`
	Email       string           `json:"email"`
	FirstName   string           `json:"first_name"`
	LastName    string           `json:"last_name"`
	DateCreated time.Time        `json:"date_created"`
}

func toDomain(rec record) domain.User {
	return domain.User{
		ID:          surreal.IDString(rec.ID),
		UserID:      rec.UserID,
		Email:       rec.Email,
		FirstName:   rec.FirstName,
		LastName:    rec.LastName,
		DateCreated: rec.DateCreated,
	}
}

// Repo provides user profile persistence backed by SurrealDB.
type Repo struct {
	store *surreal.Store
}

// New creates a user repository.
func New(store *surreal.Store) *Repo {
	return &Repo{store: store}
}

// SaveProfile merges the profile fields onto the user record created by the
// signup access method. The record's password field is left untouched.
func (r *Repo) SaveProfile(ctx context.Context, u *domain.User) error {
	rid := models.NewRecordID(table, u.UserID)

	_, err := surrealdb.Merge[record](ctx, r.store.DB(), rid, map[string]any{
		"user_id":      u.UserID,
		"email":        u.Email,
		"first_name":   u.FirstName,
		"last_name":    u.LastName,
		"date_created": u.DateCreated,
	})
	if err != nil {
		return surreal.MapError(err, "user", u.UserID)
	}
	return nil
}

// GetByID returns a user profile. Returns domain.ErrNotFound if absent.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	rid := models.NewRecordID(table, id)

	rec, err := surrealdb.Select[record](ctx, r.store.DB(), rid)
	if err != nil {
		return nil, surreal.MapError(err, "user", id)
	}
	if rec == nil || rec.ID == nil {
		return nil, domain.NewNotFoundError("user", id)
	}

	out := toDomain(*rec)
	return &out, nil
}

// List returns every user profile. Records that have signed up but never
// completed a profile still appear, with their profile fields zeroed.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	recs, err := surrealdb.Select[[]record](ctx, r.store.DB(), models.Table(table))
	if err != nil {
		return nil, surreal.MapError(err, "user", "all")
	}
	if recs == nil {
		return []domain.User{}, nil
	}

	users := make([]domain.User, len(*recs))
	for i, rec := range *recs {
		users[i] = toDomain(rec)
	}
	return users, nil
}
