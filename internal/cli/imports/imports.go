package imports

import (
	"github.com/spf13/cobra"
)

// ImportCmd returns the import command. Run by itself it imports an
// archive; its subcommands inspect past runs.
func ImportCmd() *cobra.Command {
	cmd := RunCmd()
	cmd.AddCommand(HistoryCmd())
	return cmd
}
