package models

import "time"

// Account is the tenant that owns boards and cards.
// Card numbers are unique within an account.
type Account struct {
	ID        int
	Name      string
	CreatedAt time.Time
}

// User is a principal belonging to an account
type User struct {
	ID        int       `json:"id"`
	AccountID int       `json:"account_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// GetID returns the user ID (used by quiet output mode)
func (u *User) GetID() int {
	return u.ID
}
