package cli

import (
	"testing"

	"github.com/thenoetrevino/cardport/internal/app"
	"github.com/thenoetrevino/cardport/internal/models"
	"github.com/thenoetrevino/cardport/internal/testutil"
)

// CreateTestPrincipal creates an account and user in the app's database
func CreateTestPrincipal(t *testing.T, testApp *app.App, email string) *models.User {
	t.Helper()
	_, user := testutil.CreateTestPrincipal(t, testApp.Repo(), "Acme", "Ada", email)
	return user
}
