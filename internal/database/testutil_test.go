package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/cardport/internal/models"
	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
// This is the unified test database setup used by all tests
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// Every new connection to :memory: is a fresh database
	db.SetMaxOpenConns(1)

	// Enable foreign key constraints
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := Migrate(context.Background(), db, DialectSQLite); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

// setupTestRepo returns a repository plus an account and a user in it
func setupTestRepo(t *testing.T) (*Repository, *models.Account, *models.User) {
	t.Helper()
	repo := NewRepository(setupTestDB(t), DialectSQLite)
	ctx := context.Background()

	account, err := repo.CreateAccount(ctx, "Acme")
	if err != nil {
		t.Fatalf("Failed to create account: %v", err)
	}
	user, err := repo.CreateUser(ctx, account.ID, "Ada", "ada@example.com")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return repo, account, user
}

// createTestBoard creates a board named name in the account
func createTestBoard(t *testing.T, repo *Repository, account *models.Account, user *models.User, name string) *models.Board {
	t.Helper()
	board, err := repo.CreateBoard(context.Background(), account.ID, user.ID, name, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	return board
}

// createTestCard creates a published card with the given number
func createTestCard(t *testing.T, repo *Repository, board *models.Board, user *models.User, number int, columnID *int) *models.Card {
	t.Helper()
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	card, err := repo.CreateCard(context.Background(), CreateCardParams{
		AccountID: board.AccountID,
		BoardID:   board.ID,
		ColumnID:  columnID,
		Number:    number,
		Title:     "Card",
		Status:    models.CardStatusPublished,
		CreatorID: user.ID,
		CreatedAt: ts,
		UpdatedAt: ts,
	})
	if err != nil {
		t.Fatalf("Failed to create card: %v", err)
	}
	return card
}
