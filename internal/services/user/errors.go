package user

import "errors"

// Domain errors for user service
var (
	// Validation errors
	ErrEmptyName      = errors.New("user name cannot be empty")
	ErrNameTooLong    = errors.New("user name cannot exceed 100 characters")
	ErrAccountTooLong = errors.New("account name cannot exceed 100 characters")
	ErrInvalidEmail   = errors.New("invalid email address")

	// Business logic errors
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email is already registered")
)
