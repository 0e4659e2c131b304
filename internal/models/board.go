package models

import "time"

// Board is the top-level container for cards, scoped to an account by name
type Board struct {
	ID        int
	AccountID int
	Name      string
	CreatorID int
	CreatedAt time.Time
}
