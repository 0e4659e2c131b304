package card

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/cardport/internal/cli"
	"github.com/thenoetrevino/cardport/internal/cli/styles"
	"github.com/thenoetrevino/cardport/internal/models"
)

// ListCmd returns the card list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cards in the user's account",
		Long: `List imported cards ordered by number.

Examples:
  cardport card list --as ada@example.com
  cardport card list --as ada@example.com --board Sprint --json
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("as", "", "Email of the user whose account to list (required)")
	cmd.Flags().String("board", "", "Only list cards on this board")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (card numbers only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	email, _ := cmd.Flags().GetString("as")
	board, _ := cmd.Flags().GetString("board")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	if email == "" {
		return formatter.Fail(cli.ExitUsage, "MISSING_ARGUMENT", errors.New("--as is required"),
			"Usage: cardport card list --as <email> [--board <name>]")
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

	cards, err := cliInstance.App.CardService.ListCards(ctx, email, board)
	if err != nil {
		return fail(formatter, err)
	}

	if quietMode {
		for _, c := range cards {
			fmt.Printf("%d\n", c.Number)
		}
		return nil
	}

	if jsonOutput {
		if cards == nil {
			cards = []*models.CardSummary{}
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"cards":   cards,
		})
	}

	if len(cards) == 0 {
		fmt.Println("No cards found")
		return nil
	}

	fmt.Printf("Found %d cards:\n\n", len(cards))
	for _, c := range cards {
		place := c.BoardName
		if c.ColumnName != "" {
			place += " / " + c.ColumnName
		}
		fmt.Printf("  [%d] %s %s %s\n", c.Number, styles.Value(c.Title), styles.Subtle("("+place+")"), lifecycleBadge(c.Lifecycle))
	}
	return nil
}

func lifecycleBadge(l models.Lifecycle) string {
	switch l {
	case models.LifecycleClosed:
		return styles.Success(string(l))
	case models.LifecyclePostponed:
		return styles.Warning(string(l))
	default:
		return styles.Subtle(string(l))
	}
}
