package models

import "time"

// SavedView is a shareable snapshot of a filter query, addressed by a
// random token.
type SavedView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Query     Query     `json:"query"`
	CreatedAt time.Time `json:"createdAt"`
}
