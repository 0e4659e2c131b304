package user

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/cardport/internal/cli"
	"github.com/thenoetrevino/cardport/internal/cli/styles"
	userservice "github.com/thenoetrevino/cardport/internal/services/user"
)

// CreateCmd returns the user create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Long: `Create a user that imports can run as. The account is created when no
account with that name exists; it defaults to the user's name.

Examples:
  cardport user create --email ada@example.com --name Ada --account Acme

  # Quiet mode for bash capture
  USER_ID=$(cardport user create --email ada@example.com --name Ada --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	cmd.Flags().String("email", "", "Email address (required)")
	cmd.Flags().String("name", "", "Display name (required)")
	cmd.Flags().String("account", "", "Account name (defaults to the user name)")

	// Agent-friendly flags (REQUIRED on all commands)
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	email, _ := cmd.Flags().GetString("email")
	name, _ := cmd.Flags().GetString("name")
	accountName, _ := cmd.Flags().GetString("account")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	if email == "" || name == "" {
		return formatter.Fail(cli.ExitUsage, "MISSING_ARGUMENT",
			errors.New("both --email and --name are required"),
			"Usage: cardport user create --email <email> --name <name> [--account <name>]")
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

	user, err := cliInstance.App.UserService.CreateUser(ctx, userservice.CreateUserRequest{
		Name:        name,
		Email:       email,
		AccountName: accountName,
	})
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrEmailTaken):
			return formatter.Fail(cli.ExitValidation, "EMAIL_TAKEN", err, "Use 'cardport user list' to see existing users")
		case errors.Is(err, userservice.ErrEmptyName),
			errors.Is(err, userservice.ErrNameTooLong),
			errors.Is(err, userservice.ErrAccountTooLong),
			errors.Is(err, userservice.ErrInvalidEmail):
			return formatter.Fail(cli.ExitValidation, "VALIDATION_ERROR", err, "")
		default:
			return formatter.Fail(cli.ExitError, "USER_CREATE_ERROR", err, "")
		}
	}

	if quietMode || jsonOutput {
		return formatter.Success(user)
	}

	account, err := cliInstance.App.Repo().GetAccountByID(ctx, user.AccountID)
	if err != nil {
		return formatter.Fail(cli.ExitError, "ACCOUNT_FETCH_ERROR", err, "")
	}

	fmt.Printf("%s Created user %s <%s> (id %d) in account %s\n",
		styles.Success("✓"), styles.Title(user.Name), user.Email, user.ID, styles.Value(account.Name))
	return nil
}
