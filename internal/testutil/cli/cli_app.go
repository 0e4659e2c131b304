package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/cardport/internal/app"
	"github.com/thenoetrevino/cardport/internal/config"
	"github.com/thenoetrevino/cardport/internal/storage"
	"github.com/thenoetrevino/cardport/internal/testutil"
)

// SetupCLITest creates an App over an in-memory database and a blob
// directory under t.TempDir()
func SetupCLITest(t *testing.T) *app.App {
	t.Helper()

	cfg := config.Default()
	cfg.Storage.Disk.Root = t.TempDir()
	cfg.Import.TempDir = t.TempDir()

	blobs, err := storage.NewDiskStore(cfg.Storage.Disk.Root)
	if err != nil {
		t.Fatalf("Failed to create blob store: %v", err)
	}

	return app.New(cfg, testutil.SetupTestRepo(t), blobs)
}

// ExecuteCLICommand executes a CLI command with a test app instance.
// The app travels in the command context so commands never open the
// real database.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithContext(t, context.Background(), testApp, cmd, args)
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context and test app
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	ctxWithApp := app.WithContext(ctx, testApp)
	testutil.SetupCobraCommand(cmd, args)

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctxWithApp)
	})

	return output, executeErr
}
