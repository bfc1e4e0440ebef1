package validate

import (
	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/invoicecheck/invoice"
)

// Validate runs every check against one record in a fixed order and
// returns the status plus the issue codes in the order the checks
// appended them:
//
//  1. missing_* for each absent required field
//  2. amount_not_number or invalid_amount
//  3. bad_invoice_date_format
//  4. missing_po_number
//  5. po_amount_not_number / expected_amount_not_number, amount_mismatch
//  6. duplicate_invoice
//
// The tracker is consulted and updated only when the record carries a
// full identity. The record itself is never written to.
func Validate(rec invoice.Record, tracker *Tracker) invoice.Outcome {
	var issues []string

	for _, field := range invoice.RequiredFields {
		if rec.Empty(field) {
			issues = append(issues, invoice.MissingIssue(field))
		}
	}

	// The parsed amount is kept for reconciliation below. A negative
	// amount is flagged but still reconciles; a non-numeric one cannot.
	var amount decimal.Decimal
	amountOK := false
	if !rec.Empty(invoice.FieldAmount) {
		var err error
		amount, err = ParseAmount(rec[invoice.FieldAmount])
		if err != nil {
			issues = append(issues, invoice.IssueAmountNotNumber)
		} else {
			amountOK = true
			if amount.Sign() <= 0 {
				issues = append(issues, invoice.IssueInvalidAmount)
			}
		}
	}

	if !rec.Empty(invoice.FieldInvoiceDate) && !ValidDate(rec[invoice.FieldInvoiceDate]) {
		issues = append(issues, invoice.IssueBadInvoiceDate)
	}

	if rec.Empty(invoice.FieldPONumber) {
		issues = append(issues, invoice.MissingIssue(invoice.FieldPONumber))
	}

	// The first reconciliation field present wins: po_amount shadows
	// expected_amount even when both are set.
	var expected decimal.Decimal
	expectedOK := false
	for _, field := range invoice.AmountMatchFields {
		if rec.Empty(field) {
			continue
		}
		var err error
		expected, err = ParseAmount(rec[field])
		if err != nil {
			issues = append(issues, invoice.NotNumberIssue(field))
		} else {
			expectedOK = true
		}
		break
	}

	if amountOK && expectedOK && !AmountEqual(amount, expected, Tolerance) {
		issues = append(issues, invoice.IssueAmountMismatch)
	}

	if rec.HasIdentity() {
		key := rec.Key()
		if tracker.Seen(key) {
			issues = append(issues, invoice.IssueDuplicate)
		} else {
			tracker.Record(key)
		}
	}

	status := invoice.StatusApproved
	if len(issues) > 0 {
		status = invoice.StatusNeedsReview
	}

	return invoice.Outcome{Status: status, Issues: issues}
}
