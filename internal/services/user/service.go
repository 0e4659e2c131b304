package user

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/thenoetrevino/cardport/internal/database"
	"github.com/thenoetrevino/cardport/internal/models"
)

const maxNameLength = 100

// Service defines principal management
type Service interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// CreateUserRequest encapsulates data for creating a user.
// AccountName defaults to the user's name.
type CreateUserRequest struct {
	Name        string
	Email       string
	AccountName string
}

type service struct {
	repo database.DataStore
}

// NewService creates a new user service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// CreateUser creates a user, creating its account first when no account
// has the requested name
func (s *service) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.AccountName = strings.TrimSpace(req.AccountName)
	if req.AccountName == "" {
		req.AccountName = req.Name
	}

	if err := validateCreateUser(req); err != nil {
		return nil, err
	}

	var user *models.User
	err := s.repo.WithTx(ctx, func(tx database.DataStore) error {
		if _, err := tx.GetUserByEmail(ctx, req.Email); err == nil {
			return fmt.Errorf("%w: %s", ErrEmailTaken, req.Email)
		} else if !errors.Is(err, database.ErrNotFound) {
			return err
		}

		account, err := tx.GetAccountByName(ctx, req.AccountName)
		if errors.Is(err, database.ErrNotFound) {
			account, err = tx.CreateAccount(ctx, req.AccountName)
		}
		if err != nil {
			return err
		}

		user, err = tx.CreateUser(ctx, account.ID, req.Name, req.Email)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers returns every user
func (s *service) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.repo.GetAllUsers(ctx)
}

// GetUserByEmail resolves a principal, ignoring case
func (s *service) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrInvalidEmail
	}
	u, err := s.repo.GetUserByEmail(ctx, email)
	if errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, email)
	}
	return u, err
}

func validateCreateUser(req CreateUserRequest) error {
	if req.Name == "" {
		return ErrEmptyName
	}
	if len(req.Name) > maxNameLength {
		return ErrNameTooLong
	}
	if len(req.AccountName) > maxNameLength {
		return ErrAccountTooLong
	}
	addr, err := mail.ParseAddress(req.Email)
	if err != nil || addr.Address != req.Email {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, req.Email)
	}
	return nil
}
