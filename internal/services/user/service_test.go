package user

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/cardport/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	svc := NewService(repo)
	ctx := context.Background()

	ada, err := svc.CreateUser(ctx, CreateUserRequest{Name: "Ada", Email: "Ada@Example.com", AccountName: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", ada.Email)

	grace, err := svc.CreateUser(ctx, CreateUserRequest{Name: "Grace", Email: "grace@example.com", AccountName: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, ada.AccountID, grace.AccountID, "existing account is reused")

	solo, err := svc.CreateUser(ctx, CreateUserRequest{Name: "Solo", Email: "solo@example.com"})
	require.NoError(t, err)
	assert.NotEqual(t, ada.AccountID, solo.AccountID)

	account, err := repo.GetAccountByID(ctx, solo.AccountID)
	require.NoError(t, err)
	assert.Equal(t, "Solo", account.Name, "account defaults to the user name")

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestCreateUser_Validation(t *testing.T) {
	svc := NewService(testutil.SetupTestRepo(t))
	ctx := context.Background()

	tests := []struct {
		name string
		req  CreateUserRequest
		want error
	}{
		{"empty name", CreateUserRequest{Name: " ", Email: "a@example.com"}, ErrEmptyName},
		{"long name", CreateUserRequest{Name: strings.Repeat("x", 101), Email: "a@example.com"}, ErrNameTooLong},
		{"long account", CreateUserRequest{Name: "A", Email: "a@example.com", AccountName: strings.Repeat("x", 101)}, ErrAccountTooLong},
		{"empty email", CreateUserRequest{Name: "A"}, ErrInvalidEmail},
		{"malformed email", CreateUserRequest{Name: "A", Email: "not-an-email"}, ErrInvalidEmail},
		{"display name", CreateUserRequest{Name: "A", Email: "Ada <a@example.com>"}, ErrInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateUser(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserRequest{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, CreateUserRequest{Name: "Other", Email: "ADA@example.com", AccountName: "Elsewhere"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = repo.GetAccountByName(ctx, "Elsewhere")
	assert.Error(t, err, "the account insert is rolled back")
}

func TestGetUserByEmail(t *testing.T) {
	svc := NewService(testutil.SetupTestRepo(t))
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, CreateUserRequest{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	found, err := svc.GetUserByEmail(ctx, " ADA@example.com ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.GetUserByEmail(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}
