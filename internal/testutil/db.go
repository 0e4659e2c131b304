package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/cardport/internal/database"
	"github.com/thenoetrevino/cardport/internal/models"
	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory database with full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	// Every new connection to :memory: is a fresh database
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := database.Migrate(context.Background(), db, database.DialectSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// SetupTestRepo returns a repository over a fresh in-memory database
func SetupTestRepo(t *testing.T) *database.Repository {
	t.Helper()
	return database.NewRepository(SetupTestDB(t), database.DialectSQLite)
}

// CreateTestPrincipal creates an account and a user in it
func CreateTestPrincipal(t *testing.T, repo database.DataStore, accountName, name, email string) (*models.Account, *models.User) {
	t.Helper()
	ctx := context.Background()

	account, err := repo.CreateAccount(ctx, accountName)
	if err != nil {
		t.Fatalf("Failed to create account: %v", err)
	}
	user, err := repo.CreateUser(ctx, account.ID, name, email)
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return account, user
}
