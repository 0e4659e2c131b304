package models

// Column represents a workflow lane on a board (e.g., "Backlog", "In Review")
// Columns are organized as a doubly-linked list using PrevID and NextID pointers
type Column struct {
	ID      int    // Unique identifier for the column
	BoardID int    // ID of the board this column belongs to
	Name    string // Display name of the column, matches the imported status
	PrevID  *int   // ID of the previous column (NULL for head)
	NextID  *int   // ID of the next column (NULL for tail)
}
