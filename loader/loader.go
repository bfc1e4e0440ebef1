// Package loader ingests a directory of invoice documents. Each .json
// file (extension matched case-insensitively) holds one invoice object;
// files are read in sorted filename order so a batch is reproducible.
//
// Malformed documents never abort a batch: the loader logs a warning,
// counts the failure, and moves on. Every loaded record is stamped with
// source_file = the file's base name, so report rows stay traceable to
// their input.
//
// Example usage:
//
//	loader := loader.New(loader.WithLogger(logger))
//	records, failures, err := loader.Load(ctx, "invoices")
package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/robinvdvleuten/invoicecheck/invoice"
)

// utf8BOM is tolerated at the start of an invoice document; some export
// tools prepend it to JSON files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Loader reads invoice documents from disk.
//
// Configure the loader using functional options passed to New:
//
//	loader := New(WithLogger(logger))
type Loader struct {
	// Logger receives a warning per skipped document. Defaults to a
	// discarding logger so library use stays quiet.
	Logger *slog.Logger
}

// Option configures how documents are loaded.
type Option func(*Loader)

// WithLogger directs per-file load warnings to the given logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.Logger = logger
	}
}

// New creates a new Loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{
		Logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load reads every invoice document in dir, in sorted filename order, and
// returns the loaded records plus the number of documents skipped as
// unreadable or malformed. A missing or unreadable directory is the only
// error: per-file problems are contained.
func (l *Loader) Load(ctx context.Context, dir string) ([]invoice.Record, int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read invoice directory %s: %w", dir, err)
	}

	var records []invoice.Record
	failures := 0

	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		default:
		}

		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(strings.ToLower(name), ".json") {
			continue
		}

		rec, err := l.LoadFile(filepath.Join(dir, name))
		if err != nil {
			failures++
			l.Logger.Warn("failed to load invoice", "file", name, "err", err)
			continue
		}

		records = append(records, rec)
	}

	return records, failures, nil
}

// LoadFile reads a single invoice document. The record keeps the exact
// numeric text of the source (json.Number), and source_file is stamped
// with the file's base name.
func (l *Loader) LoadFile(path string) (invoice.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	// A document is exactly one object; trailing values are as malformed
	// as a bad first one.
	if dec.More() {
		return nil, fmt.Errorf("failed to parse %s: trailing data after invoice object", path)
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invoice document %s must be a JSON object", path)
	}

	rec := invoice.Record(obj)
	rec[invoice.FieldSourceFile] = filepath.Base(path)

	return rec, nil
}
