package telemetry

import (
	"fmt"
	"io"
	"time"

	"github.com/robinvdvleuten/invoicecheck/output"
)

// slowThreshold marks operations worth highlighting in the report.
const slowThreshold = 100 * time.Millisecond

// formatTimingTree outputs the timing tree in a hierarchical format.
// Example output:
//
//	process invoices: 125ms
//	├─ load invoices: 85ms
//	├─ run 120 invoices: 33ms
//	└─ write processed_invoices.csv: 7ms
func formatTimingTree(w io.Writer, root *timerNode) {
	styles := output.NewStyles(w)

	duration := root.end.Sub(root.start)
	_, _ = fmt.Fprintf(w, "%s: %s\n", styles.Keyword(root.name), formatDuration(duration))

	// Format children recursively
	for i, child := range root.children {
		isLast := i == len(root.children)-1
		formatNode(w, child, "", isLast, styles)
	}
}

// formatNode recursively formats a node and its children.
func formatNode(w io.Writer, node *timerNode, prefix string, isLast bool, styles *output.Styles) {
	duration := node.end.Sub(node.start)

	// Choose tree characters
	var branch, extension string
	if isLast {
		branch = "└─ "
		extension = "   "
	} else {
		branch = "├─ "
		extension = "│  "
	}

	timing := formatDuration(duration)
	if duration >= slowThreshold {
		timing = styles.Warning(timing)
	} else {
		timing = styles.Dim(timing)
	}

	_, _ = fmt.Fprintf(w, "%s%s: %s\n", styles.Dim(prefix+branch), node.name, timing)

	// Format children
	childPrefix := prefix + extension
	for i, child := range node.children {
		childIsLast := i == len(node.children)-1
		formatNode(w, child, childPrefix, childIsLast, styles)
	}
}

// formatDuration formats a duration for display.
// Shows milliseconds for < 1s, seconds for >= 1s.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		ms := float64(d) / float64(time.Millisecond)
		return fmt.Sprintf("%.0fms", ms)
	}
	s := float64(d) / float64(time.Second)
	return fmt.Sprintf("%.2fs", s)
}
