package invoice

import (
	"encoding/json"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "Acme Corp", "Acme Corp"},
		{"json number", json.Number("100.50"), "100.50"},
		{"bool", true, "true"},
		{"float", 12.5, "12.5"},
		{"int", 42, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.in))
		})
	}
}

func TestEmpty(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"empty list", []any{}, true},
		{"whitespace is not empty", " ", false},
		{"zero is not empty", json.Number("0"), false},
		{"populated list", []any{"a"}, false},
		{"empty object is not empty", map[string]any{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Empty(tt.in))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "acme corp", Normalize("  ACME Corp "))
	assert.Equal(t, "", Normalize(nil))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "1001", Normalize(json.Number("1001")))
}

func TestRecordKey(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{
			name: "normalizes both halves",
			rec:  Record{FieldVendor: " ACME ", FieldInvoiceNumber: "INV-001"},
			want: "acme:inv-001",
		},
		{
			name: "missing fields become empty parts",
			rec:  Record{FieldVendor: "Acme"},
			want: "acme:",
		},
		{
			name: "numeric invoice number",
			rec:  Record{FieldVendor: "Acme", FieldInvoiceNumber: json.Number("77")},
			want: "acme:77",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.Key())
		})
	}
}

func TestRecordHasIdentity(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want bool
	}{
		{"both present", Record{FieldVendor: "Acme", FieldInvoiceNumber: "1"}, true},
		{"vendor missing", Record{FieldInvoiceNumber: "1"}, false},
		{"number empty", Record{FieldVendor: "Acme", FieldInvoiceNumber: ""}, false},
		{"whitespace still counts", Record{FieldVendor: " ", FieldInvoiceNumber: "1"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.HasIdentity())
		})
	}
}

func TestRecordClone(t *testing.T) {
	rec := Record{FieldVendor: "Acme", "notes": "original"}
	clone := rec.Clone()
	clone[FieldStatus] = StatusApproved
	clone["notes"] = "changed"

	_, stamped := rec[FieldStatus]
	assert.False(t, stamped)
	assert.Equal(t, "original", rec["notes"])
}

func TestIssueNames(t *testing.T) {
	assert.Equal(t, "missing_po_number", MissingIssue(FieldPONumber))
	assert.Equal(t, "po_amount_not_number", NotNumberIssue(FieldPOAmount))
	assert.Equal(t, IssueAmountNotNumber, NotNumberIssue(FieldAmount))
}

func TestOutcomeApproved(t *testing.T) {
	assert.True(t, Outcome{Status: StatusApproved}.Approved())
	assert.False(t, Outcome{Status: StatusNeedsReview, Issues: []string{IssueDuplicate}}.Approved())
}
