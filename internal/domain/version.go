package domain

// VersionRecord is a free-standing schema/version tag for a named collection.
// It is not linked to any other entity.
type VersionRecord struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Version string `json:"version"`
}
