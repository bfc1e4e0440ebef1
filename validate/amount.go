// Package validate implements the invoice checks: amount parsing, date
// syntax, duplicate tracking, and the engine that runs them in a fixed
// order against one record.
//
// Checks never mutate the record they inspect. Failures are reported as
// issue codes, not errors; an error here means the caller misused the
// package, not that an invoice is bad.
package validate

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/invoicecheck/invoice"
)

// Tolerance is the largest absolute difference between the invoice amount
// and its PO or expected counterpart still treated as a match.
var Tolerance = decimal.NewFromFloat(0.01)

// ParseAmount converts a raw field value into an exact decimal amount.
// The text form is trimmed first; anything decimal syntax does not cover
// (empty text, words, booleans, composite values) returns an error. Sign
// policy is the engine's concern, not the parser's.
func ParseAmount(v any) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(invoice.Text(v)))
	if err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// AmountEqual checks if two amounts are equal within tolerance.
func AmountEqual(a, b decimal.Decimal, tolerance decimal.Decimal) bool {
	diff := a.Sub(b).Abs()
	return diff.LessThanOrEqual(tolerance)
}
