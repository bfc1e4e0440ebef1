package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/robinvdvleuten/invoicecheck/pipeline"
)

var summaryHeaderStyle = lipgloss.NewStyle().Bold(true)

// summaryLine is one label/value pair in the batch summary block.
type summaryLine struct {
	label string
	value string
}

// printSummary renders the post-run summary block. Labels are padded by
// display width so the value column lines up even when a label carries
// wide runes.
func printSummary(w io.Writer, sum pipeline.Summary, loadFailures int, outputPath, logPath string) {
	lines := []summaryLine{
		{"Invoices loaded", strconv.Itoa(sum.Loaded)},
		{"Failed to load", strconv.Itoa(loadFailures)},
		{"Approved", strconv.Itoa(sum.Approved)},
		{"Needs review", strconv.Itoa(sum.NeedsReview)},
		{"Submissions sent", strconv.Itoa(sum.SubmitSuccess)},
		{"Submissions failed", strconv.Itoa(sum.SubmitFailed)},
		{"Submissions skipped", strconv.Itoa(sum.SubmitSkipped)},
		{"Report", pathStyle.Render(outputPath)},
		{"Log", pathStyle.Render(logPath)},
	}

	width := 0
	for _, line := range lines {
		if lw := runewidth.StringWidth(line.label); lw > width {
			width = lw
		}
	}

	_, _ = fmt.Fprintln(w, summaryHeaderStyle.Render("Batch summary"))
	for _, line := range lines {
		pad := strings.Repeat(" ", width-runewidth.StringWidth(line.label))
		_, _ = fmt.Fprintf(w, "  %s%s  %s\n", line.label, pad, line.value)
	}
}
