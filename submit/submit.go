// Package submit delivers finished report rows to an external endpoint.
//
// The pipeline only ever sees the Submitter interface: it hands over a
// row and receives a terminal outcome. Failures are outcomes, not errors,
// so one bad submission never aborts a batch.
package submit

import (
	"context"

	"github.com/robinvdvleuten/invoicecheck/invoice"
)

// Result is the terminal outcome of submitting one row. Detail carries
// the failure reason; it is empty on success and on skip.
type Result struct {
	Status string
	Detail string
}

// Submitter delivers one finished report row. Implementations convert
// every failure into a FAILED Result instead of returning an error.
type Submitter interface {
	Submit(ctx context.Context, row invoice.Record) Result
}

// Disabled is the Submitter used when no endpoint is configured or
// submission is switched off. Every row is skipped.
type Disabled struct{}

// Submit marks the row as skipped.
func (Disabled) Submit(context.Context, invoice.Record) Result {
	return Result{Status: invoice.SubmissionSkipped}
}
