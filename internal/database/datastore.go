package database

import (
	"context"
	"time"

	"github.com/thenoetrevino/cardport/internal/models"
)

// AccountRepository covers accounts and their users
type AccountRepository interface {
	CreateAccount(ctx context.Context, name string) (*models.Account, error)
	GetAccountByName(ctx context.Context, name string) (*models.Account, error)
	GetAccountByID(ctx context.Context, id int) (*models.Account, error)
	CreateUser(ctx context.Context, accountID int, name, email string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
}

// BoardRepository defines board persistence
type BoardRepository interface {
	CreateBoard(ctx context.Context, accountID, creatorID int, name string, createdAt time.Time) (*models.Board, error)
	GetBoardByName(ctx context.Context, accountID int, name string) (*models.Board, error)
	GetBoardsByAccount(ctx context.Context, accountID int) ([]*models.Board, error)
}

// ColumnRepository defines column persistence
type ColumnRepository interface {
	CreateColumn(ctx context.Context, boardID int, name string) (*models.Column, error)
	GetColumnByName(ctx context.Context, boardID int, name string) (*models.Column, error)
	GetColumnsByBoard(ctx context.Context, boardID int) ([]*models.Column, error)
}

// CardRepository defines card persistence and lifecycle transitions
type CardRepository interface {
	CardNumberExists(ctx context.Context, accountID, number int) (bool, error)
	CreateCard(ctx context.Context, p CreateCardParams) (*models.Card, error)
	CloseCard(ctx context.Context, cardID, userID int, at time.Time) error
	PostponeCard(ctx context.Context, cardID, userID int, at time.Time) error
	GetCardByNumber(ctx context.Context, accountID, number int) (*models.Card, error)
	GetCardSummaries(ctx context.Context, accountID int, boardName string) ([]*models.CardSummary, error)
	CountCards(ctx context.Context, accountID int) (int, error)
}

// CommentRepository defines comment persistence
type CommentRepository interface {
	CreateComment(ctx context.Context, cardID, creatorID int, body string, createdAt time.Time) (*models.Comment, error)
	GetCommentsForCard(ctx context.Context, cardID int) ([]*models.Comment, error)
	CountCommentsForAccount(ctx context.Context, accountID int) (int, error)
}

// AttachmentRepository defines attachment metadata persistence
type AttachmentRepository interface {
	CreateAttachment(ctx context.Context, p CreateAttachmentParams) (*models.Attachment, error)
	GetAttachmentsForCard(ctx context.Context, cardID int) ([]*models.Attachment, error)
}

// ImportRunRepository defines import history persistence
type ImportRunRepository interface {
	CreateImportRun(ctx context.Context, run *models.ImportRun) error
	GetRecentImportRuns(ctx context.Context, limit int) ([]*models.ImportRun, error)
}

// DataStore defines the unified interface for all data operations.
// This interface is composed of smaller, domain-specific interfaces following the
// Interface Segregation Principle. Consumers can depend on smaller interfaces
// (e.g., CardRepository, ColumnRepository) for better testability and clearer dependencies.
type DataStore interface {
	AccountRepository
	BoardRepository
	ColumnRepository
	CardRepository
	CommentRepository
	AttachmentRepository
	ImportRunRepository

	WithTx(ctx context.Context, fn func(DataStore) error) error
}

var _ DataStore = (*Repository)(nil)
