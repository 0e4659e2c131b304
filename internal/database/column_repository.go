package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/thenoetrevino/cardport/internal/models"
)

// ColumnRepo handles all column-related database operations.
type ColumnRepo struct {
	*conn
}

// CreateColumn appends a new column to the tail of the board's list
func (r *ColumnRepo) CreateColumn(ctx context.Context, boardID int, name string) (*models.Column, error) {
	var col *models.Column

	err := r.atomic(ctx, func(c *conn) error {
		// Find tail (column where next_id IS NULL) for this board
		var tailID sql.NullInt64
		err := c.queryRow(ctx,
			`SELECT id FROM columns WHERE next_id IS NULL AND board_id = ? LIMIT 1`,
			boardID,
		).Scan(&tailID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to find tail column for board %d: %w", boardID, err)
		}
		prevID := nullInt64ToPtr(tailID)

		newID, err := c.insertID(ctx,
			`INSERT INTO columns (board_id, name, prev_id, next_id, created_at) VALUES (?, ?, ?, NULL, ?)`,
			boardID, name, intPtrToNull(prevID), time.Now().UTC(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert column '%s': %w", name, err)
		}

		// Update the previous tail's next_id to point to the new column
		if prevID != nil {
			if _, err := c.exec(ctx, `UPDATE columns SET next_id = ? WHERE id = ?`, newID, *prevID); err != nil {
				return fmt.Errorf("failed to link column %d: %w", newID, err)
			}
		}

		col = &models.Column{ID: newID, BoardID: boardID, Name: name, PrevID: prevID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return col, nil
}

// GetColumnByName retrieves a column by its name within a board
func (r *ColumnRepo) GetColumnByName(ctx context.Context, boardID int, name string) (*models.Column, error) {
	col := &models.Column{}
	var prevID, nextID sql.NullInt64
	err := r.queryRow(ctx,
		`SELECT id, board_id, name, prev_id, next_id FROM columns WHERE board_id = ? AND name = ?`,
		boardID, name,
	).Scan(&col.ID, &col.BoardID, &col.Name, &prevID, &nextID)
	if err != nil {
		return nil, notFound(err, "column %q on board %d", name, boardID)
	}
	col.PrevID = nullInt64ToPtr(prevID)
	col.NextID = nullInt64ToPtr(nextID)
	return col, nil
}

// GetColumnsByBoard retrieves all columns for a board by traversing the linked list
// Returns columns in order from head to tail
func (r *ColumnRepo) GetColumnsByBoard(ctx context.Context, boardID int) ([]*models.Column, error) {
	// Fetch all columns for the board in a single query
	rows, err := r.query(ctx,
		`SELECT id, board_id, name, prev_id, next_id FROM columns WHERE board_id = ?`,
		boardID)
	if err != nil {
		return nil, fmt.Errorf("querying columns for board: %w", err)
	}
	defer rows.Close()

	// Build a map for O(1) lookups and find the head
	columnMap := make(map[int]*models.Column)
	var headID *int

	for rows.Next() {
		col := &models.Column{}
		var prevID, nextID sql.NullInt64

		if err := rows.Scan(&col.ID, &col.BoardID, &col.Name, &prevID, &nextID); err != nil {
			return nil, fmt.Errorf("scanning column row: %w", err)
		}
		col.PrevID = nullInt64ToPtr(prevID)
		col.NextID = nullInt64ToPtr(nextID)
		if col.PrevID == nil {
			id := col.ID
			headID = &id
		}
		columnMap[col.ID] = col
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating column rows: %w", err)
	}

	// Traverse the linked list in memory
	columns := make([]*models.Column, 0, len(columnMap))
	for currentID := headID; currentID != nil; {
		col, ok := columnMap[*currentID]
		if !ok || len(columns) >= len(columnMap) {
			return nil, fmt.Errorf("broken column list on board %d", boardID)
		}
		columns = append(columns, col)
		currentID = col.NextID
	}

	return columns, nil
}
