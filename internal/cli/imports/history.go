package imports

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/cardport/internal/cli"
	"github.com/thenoetrevino/cardport/internal/cli/styles"
)

const defaultHistoryLimit = 20

// HistoryCmd returns the import history subcommand
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded import runs, newest first",
		Args:  cobra.NoArgs,
		RunE:  runHistory,
	}

	cmd.Flags().Int("limit", defaultHistoryLimit, "Maximum number of runs to show")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (run IDs only)")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	if limit <= 0 {
		return formatter.Fail(cli.ExitUsage, "INVALID_LIMIT", errors.New("--limit must be a positive integer"), "")
	}

	cliInstance, err := cli.GetCLIFromContext(cmd)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	runs, err := cliInstance.App.Repo().GetRecentImportRuns(ctx, limit)
	if err != nil {
		return formatter.Fail(cli.ExitError, "HISTORY_FETCH_ERROR", err, "")
	}

	if quietMode {
		for _, r := range runs {
			fmt.Println(r.ID)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"runs":    runs,
		})
	}

	if len(runs) == 0 {
		fmt.Println("No import runs recorded")
		return nil
	}

	fmt.Printf("Found %d import runs:\n\n", len(runs))
	for _, r := range runs {
		fmt.Printf("  %s %s  %s\n", styles.Label(r.ID[:8]), styles.Value(r.ArchivePath), styles.Subtle(humanize.Time(r.StartedAt)))
		fmt.Printf("           boards=%d cards=%d comments=%d attachments=%d skipped=%d\n",
			r.Boards, r.Cards, r.Comments, r.Attachments, r.Skipped)
	}
	return nil
}
