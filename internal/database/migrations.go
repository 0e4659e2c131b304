package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// schema is written once with {{id}}, {{ts}} and {{bigint}} placeholders
// that are expanded per dialect
var schema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id {{id}},
		name TEXT NOT NULL UNIQUE,
		created_at {{ts}} NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS users (
		id {{id}},
		account_id INTEGER NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		created_at {{ts}} NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS boards (
		id {{id}},
		account_id INTEGER NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		creator_id INTEGER NOT NULL REFERENCES users(id),
		created_at {{ts}} NOT NULL,
		UNIQUE (account_id, name)
	)`,

	`CREATE TABLE IF NOT EXISTS columns (
		id {{id}},
		board_id INTEGER NOT NULL REFERENCES boards(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		prev_id INTEGER,
		next_id INTEGER,
		created_at {{ts}} NOT NULL,
		UNIQUE (board_id, name)
	)`,

	`CREATE TABLE IF NOT EXISTS cards (
		id {{id}},
		account_id INTEGER NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
		board_id INTEGER NOT NULL REFERENCES boards(id) ON DELETE CASCADE,
		column_id INTEGER REFERENCES columns(id) ON DELETE SET NULL,
		number INTEGER NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		status TEXT NOT NULL DEFAULT 'drafted',
		creator_id INTEGER NOT NULL REFERENCES users(id),
		created_at {{ts}} NOT NULL,
		updated_at {{ts}} NOT NULL,
		closed_at {{ts}},
		closed_by INTEGER REFERENCES users(id),
		postponed_at {{ts}},
		postponed_by INTEGER REFERENCES users(id),
		UNIQUE (account_id, number)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_cards_board ON cards(board_id, column_id)`,

	`CREATE TABLE IF NOT EXISTS comments (
		id {{id}},
		card_id INTEGER NOT NULL REFERENCES cards(id) ON DELETE CASCADE,
		creator_id INTEGER NOT NULL REFERENCES users(id),
		body TEXT NOT NULL,
		created_at {{ts}} NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_comments_card ON comments(card_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS attachments (
		id {{id}},
		card_id INTEGER NOT NULL REFERENCES cards(id) ON DELETE CASCADE,
		filename TEXT NOT NULL,
		content_type TEXT NOT NULL,
		byte_size {{bigint}} NOT NULL,
		checksum TEXT NOT NULL,
		blob_key TEXT NOT NULL UNIQUE,
		created_at {{ts}} NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_attachments_card ON attachments(card_id)`,

	`CREATE TABLE IF NOT EXISTS import_runs (
		id TEXT PRIMARY KEY,
		account_id INTEGER NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
		user_id INTEGER NOT NULL REFERENCES users(id),
		archive_path TEXT NOT NULL,
		started_at {{ts}} NOT NULL,
		finished_at {{ts}} NOT NULL,
		boards INTEGER NOT NULL DEFAULT 0,
		cards INTEGER NOT NULL DEFAULT 0,
		comments INTEGER NOT NULL DEFAULT 0,
		attachments INTEGER NOT NULL DEFAULT 0,
		skipped INTEGER NOT NULL DEFAULT 0
	)`,
}

// Migrate creates the schema if needed. It is safe to run on every start.
func Migrate(ctx context.Context, db *sql.DB, dialect Dialect) error {
	r := placeholders(dialect)
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, r.Replace(stmt)); err != nil {
			return fmt.Errorf("migration step %d: %w", i+1, err)
		}
	}
	return nil
}

func placeholders(dialect Dialect) *strings.Replacer {
	if dialect == DialectPostgres {
		return strings.NewReplacer(
			"{{id}}", "BIGSERIAL PRIMARY KEY",
			"{{ts}}", "TIMESTAMPTZ",
			"{{bigint}}", "BIGINT",
		)
	}
	return strings.NewReplacer(
		"{{id}}", "INTEGER PRIMARY KEY AUTOINCREMENT",
		"{{ts}}", "DATETIME",
		"{{bigint}}", "INTEGER",
	)
}
