package imports

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/cardport/internal/cli"
	"github.com/thenoetrevino/cardport/internal/testutil"
	clitest "github.com/thenoetrevino/cardport/internal/testutil/cli"
)

func scenarioArchive(t *testing.T) string {
	t.Helper()
	return testutil.BuildArchive(t,
		testutil.ArchiveFile{Name: "1.json", Body: testutil.CardJSON("Sprint", "Done", "Ship it")},
		testutil.ArchiveFile{Name: "2.json", Body: testutil.CardJSON("Sprint", "Backlog", "Plan it", "first!")},
		testutil.ArchiveFile{Name: "3.json", Body: `{"board": `},
	)
}

func TestImport_HumanReadable(t *testing.T) {
	app := clitest.SetupCLITest(t)
	user := clitest.CreateTestPrincipal(t, app, "ada@example.com")

	output, err := clitest.ExecuteCLICommand(t, app, ImportCmd(), []string{
		"--archive", scenarioArchive(t),
		"--as", user.Email,
	})

	require.NoError(t, err)
	assert.Contains(t, output, "1/3\n2/3\n3/3\n", "one progress line per entry")
	assert.Contains(t, output, "Import finished")
	assert.Contains(t, output, "Boards:      1")
	assert.Contains(t, output, "Cards:       2")
	assert.Contains(t, output, "Comments:    1")
	assert.Contains(t, output, "Attachments: 0")
	assert.Contains(t, output, "Skipped:     1")
	assert.Contains(t, output, "3.json:")
}

func TestImport_JSON(t *testing.T) {
	app := clitest.SetupCLITest(t)
	user := clitest.CreateTestPrincipal(t, app, "ada@example.com")

	output, err := clitest.ExecuteCLICommand(t, app, ImportCmd(), []string{
		"--archive", scenarioArchive(t),
		"--as", user.Email,
		"--json",
	})
	require.NoError(t, err)

	var result struct {
		Success bool `json:"success"`
		Summary struct {
			Boards   int `json:"boards"`
			Cards    int `json:"cards"`
			Comments int `json:"comments"`
			Skipped  int `json:"skipped"`
			Total    int `json:"total"`
			Failures []struct {
				Entry string `json:"entry"`
			} `json:"failures"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &result), "stdout must be pure JSON: %s", output)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Summary.Boards)
	assert.Equal(t, 2, result.Summary.Cards)
	assert.Equal(t, 1, result.Summary.Comments)
	assert.Equal(t, 1, result.Summary.Skipped)
	assert.Equal(t, 3, result.Summary.Total)
	require.Len(t, result.Summary.Failures, 1)
	assert.Equal(t, "3.json", result.Summary.Failures[0].Entry)
}

func TestImport_QuietTwice(t *testing.T) {
	app := clitest.SetupCLITest(t)
	user := clitest.CreateTestPrincipal(t, app, "ada@example.com")
	path := scenarioArchive(t)
	args := []string{"--archive", path, "--as", user.Email, "--quiet"}

	output, err := clitest.ExecuteCLICommand(t, app, ImportCmd(), args)
	require.NoError(t, err)
	assert.Equal(t, "2\n", output)

	output, err = clitest.ExecuteCLICommand(t, app, ImportCmd(), args)
	require.NoError(t, err)
	assert.Equal(t, "0\n", output, "a second run imports nothing")
}

func TestImport_Errors(t *testing.T) {
	app := clitest.SetupCLITest(t)
	user := clitest.CreateTestPrincipal(t, app, "ada@example.com")
	path := scenarioArchive(t)

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"missing archive flag", []string{"--as", user.Email}, cli.ExitUsage},
		{"missing as flag", []string{"--archive", path}, cli.ExitUsage},
		{"archive not found", []string{"--archive", filepath.Join(t.TempDir(), "nope.zip"), "--as", user.Email}, cli.ExitNotFound},
		{"unknown principal", []string{"--archive", path, "--as", "nobody@example.com"}, cli.ExitNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := clitest.ExecuteCLICommand(t, app, ImportCmd(), append(tt.args, "--json"))
			require.Error(t, err)
			assert.Equal(t, tt.code, cli.ExitCodeFor(err))
		})
	}
}

func TestHistory(t *testing.T) {
	app := clitest.SetupCLITest(t)
	user := clitest.CreateTestPrincipal(t, app, "ada@example.com")
	path := scenarioArchive(t)

	output, err := clitest.ExecuteCLICommand(t, app, HistoryCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "No import runs recorded")

	for i := 0; i < 2; i++ {
		_, err := clitest.ExecuteCLICommand(t, app, ImportCmd(), []string{"--archive", path, "--as", user.Email, "--quiet"})
		require.NoError(t, err)
	}

	output, err = clitest.ExecuteCLICommand(t, app, HistoryCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "Found 2 import runs")
	assert.Contains(t, output, "cards=2")
	assert.Contains(t, output, "cards=0")

	output, err = clitest.ExecuteCLICommand(t, app, HistoryCmd(), []string{"--limit", "1", "--quiet"})
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(output), "\n"), 1)

	output, err = clitest.ExecuteCLICommand(t, app, HistoryCmd(), []string{"--json"})
	require.NoError(t, err)
	result := testutil.ParseJSON(t, output)
	assert.Len(t, result["runs"], 2)

	_, err = clitest.ExecuteCLICommand(t, app, HistoryCmd(), []string{"--limit", "0"})
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
}
