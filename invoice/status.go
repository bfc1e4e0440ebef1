package invoice

// Statuses stamped on a validated record.
const (
	StatusApproved    = "APPROVED"
	StatusNeedsReview = "NEEDS_REVIEW"
)

// Submission outcomes stamped on a report row.
const (
	SubmissionSuccess = "SUCCESS"
	SubmissionFailed  = "FAILED"
	SubmissionSkipped = "SKIPPED"
)

// Issue codes appended by single check sites. Codes derived from a field
// name are built with MissingIssue and NotNumberIssue instead.
const (
	IssueAmountNotNumber = "amount_not_number"
	IssueInvalidAmount   = "invalid_amount"
	IssueBadInvoiceDate  = "bad_invoice_date_format"
	IssueAmountMismatch  = "amount_mismatch"
	IssueDuplicate       = "duplicate_invoice"
)

// MissingIssue names the issue for an absent required field.
func MissingIssue(field string) string {
	return "missing_" + field
}

// NotNumberIssue names the issue for a numeric field that failed to parse.
func NotNumberIssue(field string) string {
	return field + "_not_number"
}

// Outcome is the result of validating one record: a status plus the issue
// codes in the order the checks appended them. Status is APPROVED exactly
// when Issues is empty.
type Outcome struct {
	Status string
	Issues []string
}

// Approved reports whether validation found no issues.
func (o Outcome) Approved() bool {
	return o.Status == StatusApproved
}
