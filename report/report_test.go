package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/xuri/excelize/v2"

	"github.com/robinvdvleuten/invoicecheck/invoice"
)

func TestColumns(t *testing.T) {
	tests := []struct {
		name string
		rows []invoice.Record
		want []string
	}{
		{
			name: "no rows, no columns",
			rows: nil,
			want: []string{},
		},
		{
			name: "preferred order kept, absent preferred dropped",
			rows: []invoice.Record{
				{"status": "APPROVED", "vendor": "Acme"},
				{"amount": "10"},
			},
			want: []string{"vendor", "amount", "status"},
		},
		{
			name: "extras sorted after the prefix",
			rows: []invoice.Record{
				{"vendor": "Acme", "zz_custom": 1},
				{"aa_custom": 2, "amount": "10"},
			},
			want: []string{"vendor", "amount", "aa_custom", "zz_custom"},
		},
		{
			name: "column appears when any row has the field",
			rows: []invoice.Record{
				{"vendor": "Acme"},
				{"vendor": "Globex", "api_error": "status_500"},
			},
			want: []string{"vendor", "api_error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Columns(tt.rows))
		})
	}
}

func TestWriteCSV(t *testing.T) {
	rows := []invoice.Record{
		{
			"vendor":         "Acme Corp",
			"invoice_number": "INV-001",
			"amount":         "100.00",
			"status":         "APPROVED",
			"issues":         "",
		},
		{
			"vendor": "Globex",
			"status": "NEEDS_REVIEW",
			"issues": "missing_amount;missing_po_number",
			"batch":  "Q1",
		},
	}

	path := filepath.Join(t.TempDir(), "output", "processed.csv")
	assert.NoError(t, Write(rows, path))

	f, err := os.Open(path)
	assert.NoError(t, err)
	defer f.Close()

	parsed, err := csv.NewReader(f).ReadAll()
	assert.NoError(t, err)
	assert.Equal(t, 3, len(parsed))
	assert.Equal(t, []string{"vendor", "invoice_number", "amount", "status", "issues", "batch"}, parsed[0])
	assert.Equal(t, []string{"Acme Corp", "INV-001", "100.00", "APPROVED", "", ""}, parsed[1])
	assert.Equal(t, []string{"Globex", "", "", "NEEDS_REVIEW", "missing_amount;missing_po_number", "Q1"}, parsed[2])
}

func TestWriteWorkbook(t *testing.T) {
	rows := []invoice.Record{
		{
			"vendor": "Acme Corp",
			"amount": "100.00",
			"status": "APPROVED",
		},
	}

	path := filepath.Join(t.TempDir(), "processed.xlsx")
	assert.NoError(t, Write(rows, path))

	f, err := excelize.OpenFile(path)
	assert.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(SheetName)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(got))
	assert.Equal(t, []string{"vendor", "amount", "status"}, got[0])
	assert.Equal(t, []string{"Acme Corp", "100.00", "APPROVED"}, got[1])
}
