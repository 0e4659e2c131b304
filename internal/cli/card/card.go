package card

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/cardport/internal/cli"
	cardservice "github.com/thenoetrevino/cardport/internal/services/card"
)

// CardCmd returns the card parent command
func CardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Inspect imported cards",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}

// fail maps card service errors to exit codes
func fail(formatter *cli.OutputFormatter, err error) error {
	switch {
	case errors.Is(err, cardservice.ErrPrincipalNotFound):
		return formatter.Fail(cli.ExitNotFound, "PRINCIPAL_NOT_FOUND", err, "Use 'cardport user list' to see available users")
	case errors.Is(err, cardservice.ErrCardNotFound):
		return formatter.Fail(cli.ExitNotFound, "CARD_NOT_FOUND", err, "Use 'cardport card list --as <email>' to see imported cards")
	case errors.Is(err, cardservice.ErrInvalidNumber):
		return formatter.Fail(cli.ExitValidation, "INVALID_NUMBER", err, "")
	default:
		return formatter.Fail(cli.ExitError, "CARD_FETCH_ERROR", err, "")
	}
}
