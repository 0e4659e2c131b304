package cli

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/cardport/internal/app"
)

// GetCLIFromContext returns a CLI for the command. An App injected into the
// command's context (tests) is used as is; otherwise one is opened from the
// --config flag and must be closed by the caller.
func GetCLIFromContext(cmd *cobra.Command) (*CLI, error) {
	ctx := cmd.Context()
	if a, ok := app.FromContext(ctx); ok {
		return &CLI{App: a}, nil
	}
	return NewCLI(ctx, ConfigPath(cmd))
}

// ConfigPath returns the --config flag inherited from the root command
func ConfigPath(cmd *cobra.Command) string {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return ""
	}
	return path
}
