package domain

import "time"

// User is a profile document keyed by the identity provider's user id.
// The profile is written once at signup; only sub-resources change afterwards.
type User struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DateCreated time.Time `json:"date_created"`
}
