package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// logTimeFormat names run logs so consecutive runs never collide.
const logTimeFormat = "20060102T150405Z"

// openRunLog creates the log directory and one timestamped log file for
// this run inside it.
func openRunLog(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	name := fmt.Sprintf("invoicecheck_%s.log", time.Now().UTC().Format(logTimeFormat))
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	return f, nil
}

// newRunLogger builds the logger commands hand to the loader and the
// pipeline. Debug level, so per-record detail lands in the run log.
func newRunLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
