package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/cardport/internal/cli"
	"github.com/thenoetrevino/cardport/internal/cli/card"
	"github.com/thenoetrevino/cardport/internal/cli/imports"
	"github.com/thenoetrevino/cardport/internal/cli/user"
)

// NewRootCmd builds the cardport command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cardport",
		Short: "cardport - import kanban exports into a relational store",
		Long: `cardport reads a ZIP export of boards, cards, comments and attachments
and loads it into the configured database and blob store.

Re-running an import over the same archive never duplicates cards.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to the YAML config file")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n\n%s", err, cmd.UsageString())
		return cli.Exit(cli.ExitUsage, err)
	})

	rootCmd.AddCommand(imports.ImportCmd())
	rootCmd.AddCommand(user.UserCmd())
	rootCmd.AddCommand(card.CardCmd())

	return rootCmd
}

// Execute runs the root command with the given context and arguments
func Execute(ctx context.Context, args []string) error {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
