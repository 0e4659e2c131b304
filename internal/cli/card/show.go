package card

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/cardport/internal/cli"
	"github.com/thenoetrevino/cardport/internal/cli/styles"
	"github.com/thenoetrevino/cardport/internal/models"
	"github.com/thenoetrevino/cardport/internal/richtext"
)

const timeLayout = "2006-01-02 15:04"

// ShowCmd returns the card show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show card details",
		Long:  "Display a card with its board, column, lifecycle, comments and attachments.",
		Args:  cobra.NoArgs,
		RunE:  runShow,
	}

	cmd.Flags().String("as", "", "Email of the user whose account holds the card (required)")
	cmd.Flags().Int("number", -1, "Card number (required)")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (card number only)")

	return cmd
}

// cardView is the JSON shape of a card detail
type cardView struct {
	Number      int              `json:"number"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Board       string           `json:"board"`
	Column      string           `json:"column,omitempty"`
	Status      string           `json:"status"`
	Lifecycle   models.Lifecycle `json:"lifecycle"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	ClosedAt    *time.Time       `json:"closed_at,omitempty"`
	PostponedAt *time.Time       `json:"postponed_at,omitempty"`
	Comments    []commentView    `json:"comments"`
	Attachments []attachmentView `json:"attachments"`
}

type commentView struct {
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type attachmentView struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	ByteSize    int64  `json:"byte_size"`
	Checksum    string `json:"checksum"`
}

func newCardView(d *models.CardDetail) cardView {
	v := cardView{
		Number:      d.Number,
		Title:       d.Title,
		Description: d.Description,
		Board:       d.BoardName,
		Column:      d.ColumnName,
		Status:      string(d.Status),
		Lifecycle:   d.Lifecycle(),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		ClosedAt:    d.ClosedAt,
		PostponedAt: d.PostponedAt,
		Comments:    make([]commentView, 0, len(d.Comments)),
		Attachments: make([]attachmentView, 0, len(d.Attachments)),
	}
	for _, c := range d.Comments {
		v.Comments = append(v.Comments, commentView{Author: c.Author, Body: c.Body, CreatedAt: c.CreatedAt})
	}
	for _, a := range d.Attachments {
		v.Attachments = append(v.Attachments, attachmentView{
			Filename: a.Filename, ContentType: a.ContentType, ByteSize: a.ByteSize, Checksum: a.Checksum,
		})
	}
	return v
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	email, _ := cmd.Flags().GetString("as")
	number, _ := cmd.Flags().GetInt("number")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	if email == "" || !cmd.Flags().Changed("number") {
		return formatter.Fail(cli.ExitUsage, "MISSING_ARGUMENT", errors.New("both --as and --number are required"),
			"Usage: cardport card show --as <email> --number <n>")
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

	detail, err := cliInstance.App.CardService.GetCardDetail(ctx, email, number)
	if err != nil {
		return fail(formatter, err)
	}

	if quietMode {
		fmt.Printf("%d\n", detail.Number)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"card":    newCardView(detail),
		})
	}

	fmt.Println(styles.Card(renderCard(detail)))
	return nil
}

func renderCard(d *models.CardDetail) string {
	var content strings.Builder

	content.WriteString(styles.Title(fmt.Sprintf("#%d: %s", d.Number, d.Title)))
	content.WriteString("\n\n")

	place := d.BoardName
	if d.ColumnName != "" {
		place += " / " + d.ColumnName
	}
	field(&content, "Board:", place)
	field(&content, "State:", lifecycleBadge(d.Lifecycle()))
	field(&content, "Created:", d.CreatedAt.Format(timeLayout))
	field(&content, "Updated:", d.UpdatedAt.Format(timeLayout))
	if d.ClosedAt != nil {
		field(&content, "Closed:", d.ClosedAt.Format(timeLayout))
	}
	if d.PostponedAt != nil {
		field(&content, "Postponed:", d.PostponedAt.Format(timeLayout))
	}

	if text := richtext.PlainText(d.Description); text != "" {
		content.WriteString("\n" + styles.Section("Description") + "\n")
		for _, line := range strings.Split(text, "\n") {
			content.WriteString("  " + styles.Value(line) + "\n")
		}
	}

	if len(d.Comments) > 0 {
		content.WriteString("\n" + styles.Section(fmt.Sprintf("Comments (%d)", len(d.Comments))) + "\n")
		for _, c := range d.Comments {
			content.WriteString(fmt.Sprintf("  %s %s\n", styles.Label(c.Author), styles.Subtle(c.CreatedAt.Format(timeLayout))))
			for _, line := range strings.Split(richtext.PlainText(c.Body), "\n") {
				content.WriteString("    " + line + "\n")
			}
		}
	}

	if len(d.Attachments) > 0 {
		content.WriteString("\n" + styles.Section(fmt.Sprintf("Attachments (%d)", len(d.Attachments))) + "\n")
		for _, a := range d.Attachments {
			content.WriteString(fmt.Sprintf("  %s %s\n", a.Filename,
				styles.Subtle(fmt.Sprintf("(%s, %s)", a.ContentType, humanize.Bytes(uint64(a.ByteSize))))))
		}
	}

	return strings.TrimRight(content.String(), "\n")
}

func field(b *strings.Builder, label, value string) {
	b.WriteString(fmt.Sprintf("%s %s\n", styles.Label(fmt.Sprintf("%-10s", label)), value))
}
