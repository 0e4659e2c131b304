package models

import "time"

// Comment represents a rich-text comment on a card
type Comment struct {
	ID        int
	CardID    int
	CreatorID int
	Author    string // creator's display name, populated on reads
	Body      string
	CreatedAt time.Time
}
