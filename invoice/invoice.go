// Package invoice defines the record model shared by the loader, the
// validation engine, and the report writers. A record is an open mapping
// from field name to value: the recognized fields below drive validation,
// and everything else passes through to the report untouched.
package invoice

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// Field names recognized by validation and stamped by the pipeline.
const (
	FieldVendor         = "vendor"
	FieldInvoiceNumber  = "invoice_number"
	FieldInvoiceDate    = "invoice_date"
	FieldAmount         = "amount"
	FieldPONumber       = "po_number"
	FieldPOAmount       = "po_amount"
	FieldExpectedAmount = "expected_amount"
	FieldStatus         = "status"
	FieldIssues         = "issues"
	FieldProcessedAt    = "processed_at"
	FieldAPIStatus      = "api_status"
	FieldAPIError       = "api_error"
	FieldSourceFile     = "source_file"
)

// RequiredFields lists the fields every invoice must carry, in the order
// their missing_* issues are reported.
var RequiredFields = []string{
	FieldVendor,
	FieldInvoiceNumber,
	FieldInvoiceDate,
	FieldAmount,
}

// AmountMatchFields lists the reconciliation candidates. The first field
// present on a record is consulted and the rest are ignored, so po_amount
// always wins over expected_amount.
var AmountMatchFields = []string{
	FieldPOAmount,
	FieldExpectedAmount,
}

// Record is one invoice document. Values keep whatever types the source
// document carried; Text renders them for comparison and output.
type Record map[string]any

// Clone returns a shallow copy of the record. Validation treats records as
// immutable input, so the pipeline stamps its outcome fields onto a clone.
func (r Record) Clone() Record {
	return maps.Clone(r)
}

// Text renders the named field for keys, checks, and report cells.
func (r Record) Text(field string) string {
	return Text(r[field])
}

// Empty reports whether the named field counts as absent: missing from the
// record, nil, empty text, or an empty list.
func (r Record) Empty(field string) bool {
	return Empty(r[field])
}

// Key builds the identity used for duplicate detection from the normalized
// vendor and invoice number.
func (r Record) Key() string {
	return Normalize(r[FieldVendor]) + ":" + Normalize(r[FieldInvoiceNumber])
}

// HasIdentity reports whether the record carries both halves of its
// identity. Records without one never participate in duplicate detection.
func (r Record) HasIdentity() bool {
	return !r.Empty(FieldVendor) && !r.Empty(FieldInvoiceNumber)
}

// Text renders a single value the way report cells and identity keys see
// it. Strings pass through untouched, nil becomes empty text, and numbers
// keep their source form (json.Number stays exact).
func Text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return fmt.Sprint(t)
	}
}

// Empty reports whether a value counts as absent for validation purposes.
func Empty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	default:
		return false
	}
}

// Normalize trims and case-folds the text form of a value, so identity
// keys ignore stray whitespace and letter case.
func Normalize(v any) string {
	return strings.ToLower(strings.TrimSpace(Text(v)))
}
