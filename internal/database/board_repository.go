package database

import (
	"context"
	"fmt"
	"time"

	"github.com/thenoetrevino/cardport/internal/models"
)

// BoardRepo handles all board-related database operations.
type BoardRepo struct {
	*conn
}

// CreateBoard creates a board in an account
func (r *BoardRepo) CreateBoard(ctx context.Context, accountID, creatorID int, name string, createdAt time.Time) (*models.Board, error) {
	id, err := r.insertID(ctx,
		`INSERT INTO boards (account_id, name, creator_id, created_at) VALUES (?, ?, ?, ?)`,
		accountID, name, creatorID, createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert board '%s': %w", name, err)
	}
	return &models.Board{
		ID:        id,
		AccountID: accountID,
		Name:      name,
		CreatorID: creatorID,
		CreatedAt: createdAt,
	}, nil
}

// GetBoardByName retrieves a board by name within an account
func (r *BoardRepo) GetBoardByName(ctx context.Context, accountID int, name string) (*models.Board, error) {
	b := &models.Board{}
	err := r.queryRow(ctx,
		`SELECT id, account_id, name, creator_id, created_at FROM boards
		 WHERE account_id = ? AND name = ?`,
		accountID, name,
	).Scan(&b.ID, &b.AccountID, &b.Name, &b.CreatorID, &b.CreatedAt)
	if err != nil {
		return nil, notFound(err, "board %q", name)
	}
	return b, nil
}

// GetBoardsByAccount retrieves all boards of an account ordered by name
func (r *BoardRepo) GetBoardsByAccount(ctx context.Context, accountID int) ([]*models.Board, error) {
	rows, err := r.query(ctx,
		`SELECT id, account_id, name, creator_id, created_at FROM boards
		 WHERE account_id = ? ORDER BY name`,
		accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query boards for account %d: %w", accountID, err)
	}
	defer rows.Close()

	var boards []*models.Board
	for rows.Next() {
		b := &models.Board{}
		if err := rows.Scan(&b.ID, &b.AccountID, &b.Name, &b.CreatorID, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan board: %w", err)
		}
		boards = append(boards, b)
	}
	return boards, rows.Err()
}
