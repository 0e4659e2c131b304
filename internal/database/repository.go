package database

import (
	"context"
	"database/sql"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	conn *conn
	*AccountRepo
	*BoardRepo
	*ColumnRepo
	*CardRepo
	*CommentRepo
	*AttachmentRepo
	*ImportRunRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB, dialect Dialect) *Repository {
	return newRepository(&conn{q: db, db: db, dialect: dialect})
}

func newRepository(c *conn) *Repository {
	return &Repository{
		conn:           c,
		AccountRepo:    &AccountRepo{conn: c},
		BoardRepo:      &BoardRepo{conn: c},
		ColumnRepo:     &ColumnRepo{conn: c},
		CardRepo:       &CardRepo{conn: c},
		CommentRepo:    &CommentRepo{conn: c},
		AttachmentRepo: &AttachmentRepo{conn: c},
		ImportRunRepo:  &ImportRunRepo{conn: c},
	}
}

// WithTx runs fn against a transaction-scoped DataStore. The transaction
// commits when fn returns nil and rolls back otherwise. Calling WithTx on
// a transaction-scoped store joins the existing transaction.
func (r *Repository) WithTx(ctx context.Context, fn func(DataStore) error) error {
	return r.conn.atomic(ctx, func(c *conn) error {
		return fn(newRepository(c))
	})
}
