// Package report writes the batch report: one row per invoice, columns in
// a fixed preferred order followed by any extra field names in sorted
// order. The writer is picked by the output path's extension: .xlsx gets
// a workbook, everything else CSV.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/robinvdvleuten/invoicecheck/invoice"
)

// PreferredColumns is the fixed column prefix. A preferred column appears
// only when at least one row carries the field; every other field lands
// after the prefix in sorted order.
var PreferredColumns = []string{
	invoice.FieldVendor,
	invoice.FieldInvoiceNumber,
	invoice.FieldInvoiceDate,
	invoice.FieldAmount,
	invoice.FieldPONumber,
	invoice.FieldPOAmount,
	invoice.FieldExpectedAmount,
	invoice.FieldStatus,
	invoice.FieldIssues,
	invoice.FieldProcessedAt,
	invoice.FieldAPIStatus,
	invoice.FieldAPIError,
	invoice.FieldSourceFile,
}

// Columns assembles the header for a set of rows.
func Columns(rows []invoice.Record) []string {
	columns := make([]string, 0, len(PreferredColumns))
	chosen := make(map[string]bool, len(PreferredColumns))

	for _, name := range PreferredColumns {
		for _, row := range rows {
			if _, ok := row[name]; ok {
				columns = append(columns, name)
				chosen[name] = true
				break
			}
		}
	}

	extraSet := make(map[string]struct{})
	for _, row := range rows {
		for name := range row {
			if !chosen[name] {
				extraSet[name] = struct{}{}
			}
		}
	}

	extras := maps.Keys(extraSet)
	slices.Sort(extras)

	return append(columns, extras...)
}

// Write writes rows to path, creating parent directories as needed.
func Write(rows []invoice.Record, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory %s: %w", dir, err)
		}
	}

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return writeWorkbook(rows, path)
	}

	return writeCSV(rows, path)
}

func writeCSV(rows []invoice.Record, path string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	columns := Columns(rows)
	if err := w.Write(columns); err != nil {
		return err
	}

	cells := make([]string, len(columns))
	for _, row := range rows {
		for i, name := range columns {
			cells[i] = row.Text(name)
		}
		if err := w.Write(cells); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}

	return nil
}
