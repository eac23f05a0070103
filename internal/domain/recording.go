package domain

import "time"

// Visibility selects which recordings a listing returns.
type Visibility int

const (
	VisibilityAll Visibility = iota
	VisibilityPublic
	VisibilityPrivate
)

// Recording is an audio recording owned by exactly one user. Its lifecycle is
// tied to explicit create/delete calls; deleting the owner does not cascade.
type Recording struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	IsPublic    bool      `json:"is_public"`
	URL         string    `json:"URL"`
	Duration    float64   `json:"duration"`
	DateCreated time.Time `json:"date_created"`
}
