package cli

import (
	"fmt"
	"io"

	"charm.land/bubbles/v2/progress"

	"github.com/thenoetrevino/cardport/internal/cli/styles"
)

const progressWidth = 40

// ProgressPrinter reports import progress. On a terminal it redraws a bar
// in place; otherwise it prints one "current/total" line per entry.
type ProgressPrinter struct {
	w           io.Writer
	interactive bool
	bar         progress.Model
}

// NewProgressPrinter creates a printer writing to w
func NewProgressPrinter(w io.Writer, interactive bool) *ProgressPrinter {
	return &ProgressPrinter{
		w:           w,
		interactive: interactive,
		bar:         progress.New(progress.WithWidth(progressWidth), progress.WithoutPercentage()),
	}
}

// Progress implements importer.ProgressReporter
func (p *ProgressPrinter) Progress(current, total int) {
	if !p.interactive {
		fmt.Fprintf(p.w, "%d/%d\n", current, total)
		return
	}

	percent := 1.0
	if total > 0 {
		percent = float64(current) / float64(total)
	}
	fmt.Fprintf(p.w, "\r%s %s", p.bar.ViewAs(percent), styles.Counter(fmt.Sprintf("%d/%d", current, total)))
	if current >= total {
		fmt.Fprintln(p.w)
	}
}
