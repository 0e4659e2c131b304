package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/cardport/internal/cli"
	"github.com/thenoetrevino/cardport/internal/testutil"
	clitest "github.com/thenoetrevino/cardport/internal/testutil/cli"
)

func TestCreateUser_Positive(t *testing.T) {
	app := clitest.SetupCLITest(t)

	t.Run("human readable", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--email", "ada@example.com", "--name", "Ada", "--account", "Acme",
		})
		require.NoError(t, err)
		assert.Contains(t, output, "Created user Ada <ada@example.com>")
		assert.Contains(t, output, "in account Acme")
	})

	t.Run("quiet", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--email", "grace@example.com", "--name", "Grace", "--quiet",
		})
		require.NoError(t, err)
		assert.Equal(t, "2\n", output)
	})

	t.Run("json", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--email", "linus@example.com", "--name", "Linus", "--json",
		})
		require.NoError(t, err)
		result := testutil.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])
		data := result["data"].(map[string]interface{})
		assert.Equal(t, "linus@example.com", data["email"])
	})
}

func TestCreateUser_Negative(t *testing.T) {
	app := clitest.SetupCLITest(t)
	_, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{"--email", "ada@example.com", "--name", "Ada"})
	require.NoError(t, err)

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"missing email", []string{"--name", "Ada"}, cli.ExitUsage},
		{"missing name", []string{"--email", "x@example.com"}, cli.ExitUsage},
		{"invalid email", []string{"--email", "nope", "--name", "Nope"}, cli.ExitValidation},
		{"duplicate email", []string{"--email", "ADA@example.com", "--name", "Ada 2"}, cli.ExitValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), append(tt.args, "--json"))
			require.Error(t, err)
			assert.Equal(t, tt.code, cli.ExitCodeFor(err))
		})
	}
}

func TestListUsers(t *testing.T) {
	app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "No users found")

	clitest.CreateTestPrincipal(t, app, "ada@example.com")

	output, err = clitest.ExecuteCLICommand(t, app, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "Found 1 users")
	assert.Contains(t, output, "Ada <ada@example.com>")

	output, err = clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Len(t, strings.Fields(output), 1)
}
