package models

import "time"

// CardStatus is the publication status of a card
type CardStatus string

const (
	CardStatusDrafted   CardStatus = "drafted"
	CardStatusPublished CardStatus = "published"
)

// Lifecycle is the derived open/closed/postponed state of a card
type Lifecycle string

const (
	LifecycleOpen      Lifecycle = "open"
	LifecycleClosed    Lifecycle = "closed"
	LifecyclePostponed Lifecycle = "postponed"
)

// Card is the primary work item. Number is unique within the account.
type Card struct {
	ID          int
	AccountID   int
	BoardID     int
	ColumnID    *int // nil when the card sits outside any column
	Number      int
	Title       string
	Description string
	Status      CardStatus
	CreatorID   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ClosedAt    *time.Time
	ClosedBy    *int
	PostponedAt *time.Time
	PostponedBy *int
}

// GetID returns the card number (used by quiet output mode)
func (c *Card) GetID() int {
	return c.Number
}

// Lifecycle derives the card state. A closure wins over a postponement.
func (c *Card) Lifecycle() Lifecycle {
	switch {
	case c.ClosedAt != nil:
		return LifecycleClosed
	case c.PostponedAt != nil:
		return LifecyclePostponed
	default:
		return LifecycleOpen
	}
}

// CardSummary is a lightweight card row for list views
type CardSummary struct {
	Number     int       `json:"number"`
	Title      string    `json:"title"`
	BoardName  string    `json:"board"`
	ColumnName string    `json:"column,omitempty"`
	Lifecycle  Lifecycle `json:"lifecycle"`
	CreatedAt  time.Time `json:"created_at"`
}

// CardDetail is a card with everything needed to render it in full
type CardDetail struct {
	*Card
	BoardName   string
	ColumnName  string
	Comments    []*Comment
	Attachments []*Attachment
}
