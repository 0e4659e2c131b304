package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/cardport/internal/models"
)

// AccountRepo handles accounts and the users that belong to them.
type AccountRepo struct {
	*conn
}

// CreateAccount creates a new account
func (r *AccountRepo) CreateAccount(ctx context.Context, name string) (*models.Account, error) {
	now := time.Now().UTC()
	id, err := r.insertID(ctx,
		`INSERT INTO accounts (name, created_at) VALUES (?, ?)`,
		name, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert account '%s': %w", name, err)
	}
	return &models.Account{ID: id, Name: name, CreatedAt: now}, nil
}

// GetAccountByName retrieves an account by its unique name
func (r *AccountRepo) GetAccountByName(ctx context.Context, name string) (*models.Account, error) {
	account := &models.Account{}
	err := r.queryRow(ctx,
		`SELECT id, name, created_at FROM accounts WHERE name = ?`, name,
	).Scan(&account.ID, &account.Name, &account.CreatedAt)
	if err != nil {
		return nil, notFound(err, "account %q", name)
	}
	return account, nil
}

// GetAccountByID retrieves an account by ID
func (r *AccountRepo) GetAccountByID(ctx context.Context, id int) (*models.Account, error) {
	account := &models.Account{}
	err := r.queryRow(ctx,
		`SELECT id, name, created_at FROM accounts WHERE id = ?`, id,
	).Scan(&account.ID, &account.Name, &account.CreatedAt)
	if err != nil {
		return nil, notFound(err, "account %d", id)
	}
	return account, nil
}

// CreateUser creates a user in an account. Emails are stored lowercased.
func (r *AccountRepo) CreateUser(ctx context.Context, accountID int, name, email string) (*models.User, error) {
	now := time.Now().UTC()
	email = normalizeEmail(email)
	id, err := r.insertID(ctx,
		`INSERT INTO users (account_id, name, email, created_at) VALUES (?, ?, ?, ?)`,
		accountID, name, email, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user '%s': %w", email, err)
	}
	return &models.User{ID: id, AccountID: accountID, Name: name, Email: email, CreatedAt: now}, nil
}

// GetUserByEmail resolves a principal by email, case-insensitively
func (r *AccountRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := r.queryRow(ctx,
		`SELECT id, account_id, name, email, created_at FROM users WHERE email = ?`,
		normalizeEmail(email),
	).Scan(&user.ID, &user.AccountID, &user.Name, &user.Email, &user.CreatedAt)
	if err != nil {
		return nil, notFound(err, "user %q", email)
	}
	return user, nil
}

// GetAllUsers retrieves all users ordered by ID
func (r *AccountRepo) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	rows, err := r.query(ctx,
		`SELECT id, account_id, name, email, created_at FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u := &models.User{}
		if err := rows.Scan(&u.ID, &u.AccountID, &u.Name, &u.Email, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
