package domain

// UserRecordings pairs a user with a subset of their recordings. Used by the
// cross-user aggregate views, which scan every user per request.
type UserRecordings struct {
	User       User        `json:"user"`
	Recordings []Recording `json:"recordings"`
}

// UserInfo pairs a user with their public recordings and favorite-raga copies.
type UserInfo struct {
	User          User           `json:"user"`
	Recordings    []Recording    `json:"recordings"`
	FavoriteRagas []FavoriteRaga `json:"favorite_ragas"`
}
