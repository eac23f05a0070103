package domain

import "time"

// CatalogCollection is the source tag denoting the shared raga catalog in a
// favorite-reference request. Any other tag is interpreted as a user id.
const CatalogCollection = "ragas"

// FavoriteRaga is a user-owned copy of a raga's fields, taken at the time of
// favoriting. It is independent of the source raga after creation: editing or
// deleting the source never touches the copy.
type FavoriteRaga struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Name        string `json:"name"`
	Inputs      []int  `json:"inputs"`
	Vadi        string `json:"vadi"`
	Samvadi     string `json:"samvadi"`
	Description string `json:"description"`
	IsPublic    bool   `json:"is_public,omitempty"`
}

// DocRef is a normalized (collection, id) pair identifying a document in
// another collection. Reference matching always compares both components,
// never store-level object identity.
type DocRef struct {
	Collection string `json:"collection"`
	ID         string `json:"id"`
}

// Equal reports whether two references identify the same document.
func (r DocRef) Equal(other DocRef) bool {
	return r.Collection == other.Collection && r.ID == other.ID
}

// FavoriteRagaRef is an indirection record: it points at a raga in the
// catalog or at another user's favorite copy, and owns no payload of its own.
// The target's existence is only checked at store and at resolution time;
// a target deleted in between surfaces as an unresolved reference.
type FavoriteRagaRef struct {
	ID          string    `json:"id"`
	RagaRef     DocRef    `json:"ragaReference"`
	DateCreated time.Time `json:"date_created"`
}

// ResolvedFavorites is the outcome of resolving a user's indirection records.
// Total counts stored references; Unresolved counts those whose target no
// longer exists. Callers decide how to treat partial resolution.
type ResolvedFavorites struct {
	Favorites  []FavoriteRaga `json:"favorites"`
	Total      int            `json:"total"`
	Unresolved int            `json:"unresolved"`
}
