package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/thenoetrevino/cardport/internal/models"
)

// CardRepo handles all card-related database operations.
type CardRepo struct {
	*conn
}

// CreateCardParams carries a fully-specified card. The number and
// timestamps are stored as given; no auto-numbering happens here.
type CreateCardParams struct {
	AccountID   int
	BoardID     int
	ColumnID    *int
	Number      int
	Title       string
	Description string
	Status      models.CardStatus
	CreatorID   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const cardColumns = `id, account_id, board_id, column_id, number, title, description, status,
	creator_id, created_at, updated_at, closed_at, closed_by, postponed_at, postponed_by`

// CardNumberExists reports whether a card with this number exists in the account
func (r *CardRepo) CardNumberExists(ctx context.Context, accountID, number int) (bool, error) {
	var count int
	err := r.queryRow(ctx,
		`SELECT COUNT(*) FROM cards WHERE account_id = ? AND number = ?`,
		accountID, number,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check card number %d: %w", number, err)
	}
	return count > 0, nil
}

// CreateCard inserts a card with its externally supplied number
func (r *CardRepo) CreateCard(ctx context.Context, p CreateCardParams) (*models.Card, error) {
	if p.Status == "" {
		p.Status = models.CardStatusDrafted
	}

	id, err := r.insertID(ctx,
		`INSERT INTO cards (account_id, board_id, column_id, number, title, description, status,
			creator_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.AccountID, p.BoardID, intPtrToNull(p.ColumnID), p.Number, p.Title,
		stringToNull(p.Description), string(p.Status), p.CreatorID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert card %d: %w", p.Number, err)
	}

	return &models.Card{
		ID:          id,
		AccountID:   p.AccountID,
		BoardID:     p.BoardID,
		ColumnID:    p.ColumnID,
		Number:      p.Number,
		Title:       p.Title,
		Description: p.Description,
		Status:      p.Status,
		CreatorID:   p.CreatorID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}

// CloseCard records a closure. Closing a closed card returns models.ErrCardClosed.
func (r *CardRepo) CloseCard(ctx context.Context, cardID, userID int, at time.Time) error {
	result, err := r.exec(ctx,
		`UPDATE cards SET closed_at = ?, closed_by = ? WHERE id = ? AND closed_at IS NULL`,
		at, userID, cardID,
	)
	if err != nil {
		return fmt.Errorf("failed to close card %d: %w", cardID, err)
	}
	return r.expectOne(ctx, result, models.ErrCardClosed, cardID)
}

// PostponeCard moves a card to "not now". Postponing twice returns models.ErrCardPostponed.
func (r *CardRepo) PostponeCard(ctx context.Context, cardID, userID int, at time.Time) error {
	result, err := r.exec(ctx,
		`UPDATE cards SET postponed_at = ?, postponed_by = ? WHERE id = ? AND postponed_at IS NULL`,
		at, userID, cardID,
	)
	if err != nil {
		return fmt.Errorf("failed to postpone card %d: %w", cardID, err)
	}
	return r.expectOne(ctx, result, models.ErrCardPostponed, cardID)
}

func (r *CardRepo) expectOne(ctx context.Context, result sql.Result, conflict error, cardID int) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 1 {
		return nil
	}

	var exists int
	if err := r.queryRow(ctx, `SELECT COUNT(*) FROM cards WHERE id = ?`, cardID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check card %d: %w", cardID, err)
	}
	if exists == 0 {
		return fmt.Errorf("card %d: %w", cardID, ErrNotFound)
	}
	return conflict
}

// GetCardByNumber retrieves a card by its number within an account
func (r *CardRepo) GetCardByNumber(ctx context.Context, accountID, number int) (*models.Card, error) {
	card, err := scanCard(r.queryRow(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE account_id = ? AND number = ?`,
		accountID, number,
	))
	if err != nil {
		return nil, notFound(err, "card %d", number)
	}
	return card, nil
}

// GetCardSummaries lists an account's cards ordered by number.
// A non-empty boardName restricts the list to that board.
func (r *CardRepo) GetCardSummaries(ctx context.Context, accountID int, boardName string) ([]*models.CardSummary, error) {
	query := `SELECT c.number, c.title, b.name, col.name, c.closed_at, c.postponed_at, c.created_at
		FROM cards c
		JOIN boards b ON b.id = c.board_id
		LEFT JOIN columns col ON col.id = c.column_id
		WHERE c.account_id = ?`
	args := []any{accountID}
	if boardName != "" {
		query += ` AND b.name = ?`
		args = append(args, boardName)
	}
	query += ` ORDER BY c.number`

	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards for account %d: %w", accountID, err)
	}
	defer rows.Close()

	var summaries []*models.CardSummary
	for rows.Next() {
		s := &models.CardSummary{}
		var columnName sql.NullString
		var closedAt, postponedAt sql.NullTime
		if err := rows.Scan(&s.Number, &s.Title, &s.BoardName, &columnName, &closedAt, &postponedAt, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan card summary: %w", err)
		}
		s.ColumnName = NullStringToString(columnName)
		card := models.Card{ClosedAt: nullTimeToPtr(closedAt), PostponedAt: nullTimeToPtr(postponedAt)}
		s.Lifecycle = card.Lifecycle()
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// CountCards returns the number of cards in an account
func (r *CardRepo) CountCards(ctx context.Context, accountID int) (int, error) {
	var count int
	err := r.queryRow(ctx, `SELECT COUNT(*) FROM cards WHERE account_id = ?`, accountID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count cards: %w", err)
	}
	return count, nil
}

func scanCard(row *sql.Row) (*models.Card, error) {
	c := &models.Card{}
	var columnID, closedBy, postponedBy sql.NullInt64
	var description sql.NullString
	var status string
	var closedAt, postponedAt sql.NullTime

	err := row.Scan(
		&c.ID, &c.AccountID, &c.BoardID, &columnID, &c.Number, &c.Title, &description, &status,
		&c.CreatorID, &c.CreatedAt, &c.UpdatedAt, &closedAt, &closedBy, &postponedAt, &postponedBy,
	)
	if err != nil {
		return nil, err
	}

	c.ColumnID = nullInt64ToPtr(columnID)
	c.Description = NullStringToString(description)
	c.Status = models.CardStatus(status)
	c.ClosedAt = nullTimeToPtr(closedAt)
	c.ClosedBy = nullInt64ToPtr(closedBy)
	c.PostponedAt = nullTimeToPtr(postponedAt)
	c.PostponedBy = nullInt64ToPtr(postponedBy)
	return c, nil
}
