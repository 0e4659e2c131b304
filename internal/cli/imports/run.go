package imports

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/cardport/internal/archive"
	"github.com/thenoetrevino/cardport/internal/cli"
	"github.com/thenoetrevino/cardport/internal/cli/styles"
	"github.com/thenoetrevino/cardport/internal/services/importer"
)

const usageHint = "Usage: cardport import --archive <path.zip> --as <email>"

// RunCmd returns the command that imports an archive
func RunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a card export archive",
		Long: `Import a ZIP export holding one <number>.json file per card and
attachment payloads under <number>/.

Cards whose number already exists in the account are skipped, so running
the same archive twice is safe.

Examples:
  # Import with progress and a summary
  cardport import --archive export.zip --as ada@example.com

  # JSON summary for scripts
  cardport import --archive export.zip --as ada@example.com --json

  # Only the number of imported cards
  IMPORTED=$(cardport import --archive export.zip --as ada@example.com --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runImport,
	}

	cmd.Flags().String("archive", "", "Path to the export ZIP (required)")
	cmd.Flags().String("as", "", "Email of the importing user (required)")

	// Agent-friendly flags (REQUIRED on all commands)
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (imported card count only)")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	archivePath, _ := cmd.Flags().GetString("archive")
	email, _ := cmd.Flags().GetString("as")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	if archivePath == "" || email == "" {
		return formatter.Fail(cli.ExitUsage, "MISSING_ARGUMENT",
			fmt.Errorf("%w: both --archive and --as are required", importer.ErrMissingArgument), usageHint)
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

	var reporter importer.ProgressReporter
	if !jsonOutput && !quietMode {
		reporter = cli.NewProgressPrinter(os.Stdout, cli.IsTerminal(os.Stdout))
	}

	summary, err := cliInstance.App.NewImporter(reporter).Run(ctx, archivePath, email)
	switch {
	case errors.Is(err, importer.ErrMissingArgument):
		return formatter.Fail(cli.ExitUsage, "MISSING_ARGUMENT", err, usageHint)
	case errors.Is(err, archive.ErrArchiveNotFound):
		return formatter.Fail(cli.ExitNotFound, "ARCHIVE_NOT_FOUND", err, "Check the --archive path")
	case errors.Is(err, importer.ErrUnknownPrincipal):
		return formatter.Fail(cli.ExitNotFound, "PRINCIPAL_NOT_FOUND", err,
			"Create the user first with 'cardport user create --email <email> --name <name>'")
	case errors.Is(err, archive.ErrInvalidArchive):
		return formatter.Fail(cli.ExitDataErr, "ARCHIVE_UNREADABLE", err, "Is the file a ZIP archive?")
	case err != nil && summary == nil:
		return formatter.Fail(cli.ExitError, "IMPORT_ERROR", err, "")
	}

	if printErr := printSummary(summary, jsonOutput, quietMode); printErr != nil {
		return printErr
	}

	if err != nil {
		// Interrupted: the partial summary above is still accurate
		return formatter.Fail(cli.ExitError, "IMPORT_INTERRUPTED", err, "Run the import again to pick up the remaining cards")
	}
	return nil
}

func printSummary(s *importer.Summary, jsonOutput, quietMode bool) error {
	if quietMode {
		fmt.Printf("%d\n", s.Cards)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"summary": s,
		})
	}

	fmt.Printf("\n%s %s\n\n", styles.Success("✓"), styles.Title(fmt.Sprintf("Import finished in %s", s.Elapsed().Round(time.Millisecond))))
	rows := []struct {
		label string
		value int
	}{
		{"Boards", s.Boards},
		{"Cards", s.Cards},
		{"Comments", s.Comments},
		{"Attachments", s.Attachments},
		{"Skipped", s.Skipped},
	}
	for _, r := range rows {
		fmt.Printf("  %s %s\n", styles.Label(fmt.Sprintf("%-12s", r.label+":")), humanize.Comma(int64(r.value)))
	}

	if s.AttachmentErrors > 0 {
		fmt.Printf("\n%s %d attachment(s) could not be stored; see the log for details\n",
			styles.Warning("!"), s.AttachmentErrors)
	}

	if len(s.Failures) > 0 {
		fmt.Printf("\n%s\n", styles.Section("Skipped entries"))
		for _, f := range s.Failures {
			fmt.Printf("  %s %s\n", styles.Label(f.Entry+":"), f.Reason)
		}
	}

	fmt.Printf("\n%s\n", styles.Subtle("Run "+s.RunID))
	return nil
}
