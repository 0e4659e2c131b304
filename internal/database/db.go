// Package database handles the connection to the relational store and all
// repository operations on it
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/thenoetrevino/cardport/internal/config"
)

// InitDB opens the configured database, applies connection settings and
// runs migrations
func InitDB(ctx context.Context, cfg config.Database) (*sql.DB, Dialect, error) {
	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, 0, err
	}

	if dialect == DialectSQLite && isFilePath(cfg.DSN) {
		if err := os.MkdirAll(filepath.Dir(cfg.DSN), 0o755); err != nil {
			return nil, 0, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open(dialect.DriverName(), cfg.DSN)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open database: %w", err)
	}

	if dialect == DialectSQLite {
		// SQLite benefits from a single writer connection
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)

		for _, pragma := range []string{
			"PRAGMA foreign_keys = ON",
			"PRAGMA journal_mode = WAL",
			"PRAGMA busy_timeout = 5000",
		} {
			if _, err := db.ExecContext(ctx, pragma); err != nil {
				slog.Error("Failed to apply pragma", "pragma", pragma, "error", err)
				closeDB(db)
				return nil, 0, err
			}
		}
	}

	if err := db.PingContext(ctx); err != nil {
		closeDB(db)
		return nil, 0, fmt.Errorf("database ping failed: %w", err)
	}

	if err := Migrate(ctx, db, dialect); err != nil {
		closeDB(db)
		return nil, 0, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, dialect, nil
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}

// isFilePath reports whether a sqlite DSN names a file on disk
func isFilePath(dsn string) bool {
	return dsn != "" && dsn != ":memory:" && !strings.HasPrefix(dsn, "file:")
}
