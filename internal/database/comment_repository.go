package database

import (
	"context"
	"fmt"
	"time"

	"github.com/thenoetrevino/cardport/internal/models"
)

// CommentRepo handles all comment-related database operations.
type CommentRepo struct {
	*conn
}

// CreateComment adds a comment to a card, keeping the given timestamp
func (r *CommentRepo) CreateComment(ctx context.Context, cardID, creatorID int, body string, createdAt time.Time) (*models.Comment, error) {
	id, err := r.insertID(ctx,
		`INSERT INTO comments (card_id, creator_id, body, created_at) VALUES (?, ?, ?, ?)`,
		cardID, creatorID, body, createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert comment on card %d: %w", cardID, err)
	}
	return &models.Comment{
		ID:        id,
		CardID:    cardID,
		CreatorID: creatorID,
		Body:      body,
		CreatedAt: createdAt,
	}, nil
}

// GetCommentsForCard retrieves a card's comments oldest first, with author names
func (r *CommentRepo) GetCommentsForCard(ctx context.Context, cardID int) ([]*models.Comment, error) {
	rows, err := r.query(ctx,
		`SELECT c.id, c.card_id, c.creator_id, u.name, c.body, c.created_at
		 FROM comments c
		 JOIN users u ON u.id = c.creator_id
		 WHERE c.card_id = ?
		 ORDER BY c.created_at, c.id`,
		cardID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments for card %d: %w", cardID, err)
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		c := &models.Comment{}
		if err := rows.Scan(&c.ID, &c.CardID, &c.CreatorID, &c.Author, &c.Body, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// CountCommentsForAccount returns the number of comments on an account's cards
func (r *CommentRepo) CountCommentsForAccount(ctx context.Context, accountID int) (int, error) {
	var count int
	err := r.queryRow(ctx,
		`SELECT COUNT(*) FROM comments c JOIN cards k ON k.id = c.card_id WHERE k.account_id = ?`,
		accountID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}
