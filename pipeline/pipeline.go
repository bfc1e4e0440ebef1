// Package pipeline runs one invoice batch end to end: validate each
// record, stamp the outcome onto a report row, hand the row to the
// submitter, and tally the run's counters.
//
// A batch is strictly sequential. Each record is validated and submitted
// before the next one starts, and duplicate detection depends on that
// order: the first occurrence of an identity stays clean, later repeats
// are flagged.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/robinvdvleuten/invoicecheck/invoice"
	"github.com/robinvdvleuten/invoicecheck/submit"
	"github.com/robinvdvleuten/invoicecheck/telemetry"
	"github.com/robinvdvleuten/invoicecheck/validate"
)

// Summary holds the counters accumulated over one batch run.
type Summary struct {
	// RunID identifies one batch run in logs and the dashboard.
	RunID string `json:"run_id"`

	Loaded        int `json:"loaded"`
	Approved      int `json:"approved"`
	NeedsReview   int `json:"needs_review"`
	SubmitSuccess int `json:"submit_success"`
	SubmitFailed  int `json:"submit_failed"`
	SubmitSkipped int `json:"submit_skipped"`
}

// Pipeline drives batches through validation and submission. Construct
// one with New and reuse it; every Run starts with a fresh duplicate
// tracker.
type Pipeline struct {
	submitter submit.Submitter
	logger    *slog.Logger
	now       func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithSubmitter selects the submission collaborator. The default is
// submit.Disabled, which skips every row.
func WithSubmitter(s submit.Submitter) Option {
	return func(p *Pipeline) {
		p.submitter = s
	}
}

// WithLogger directs per-record progress and submission warnings to the
// given logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithClock overrides the processed_at timestamp source. Tests use this
// to freeze time.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

// New creates a Pipeline with the given options.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		submitter: submit.Disabled{},
		logger:    slog.New(slog.DiscardHandler),
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Run processes records in the given order. Each record is validated,
// copied into a report row carrying status, issues, and a UTC
// processed_at timestamp, then submitted; the submission result lands on
// the row afterwards, with api_error present only when there is error
// text. The returned rows parallel the input order and the input records
// are never modified.
//
// Submission failures are outcomes on the row, not errors; a rejected
// row never aborts the batch.
func (p *Pipeline) Run(ctx context.Context, records []invoice.Record) ([]invoice.Record, Summary) {
	timer := telemetry.FromContext(ctx).Start(fmt.Sprintf("run %d invoices", len(records)))
	defer timer.End()

	sum := Summary{
		RunID:  uuid.NewString(),
		Loaded: len(records),
	}

	p.logger.Info("starting batch run", "run_id", sum.RunID, "invoices", len(records))

	tracker := validate.NewTracker()
	rows := make([]invoice.Record, 0, len(records))

	for _, rec := range records {
		out := validate.Validate(rec, tracker)

		row := rec.Clone()
		row[invoice.FieldStatus] = out.Status
		row[invoice.FieldIssues] = strings.Join(out.Issues, ";")
		row[invoice.FieldProcessedAt] = p.now().UTC().Format(time.RFC3339)

		if out.Approved() {
			sum.Approved++
		} else {
			sum.NeedsReview++
			p.logger.Debug("invoice needs review",
				"run_id", sum.RunID,
				"file", rec.Text(invoice.FieldSourceFile),
				"issues", row.Text(invoice.FieldIssues))
		}

		res := p.submitter.Submit(ctx, row)
		row[invoice.FieldAPIStatus] = res.Status
		if res.Detail != "" {
			row[invoice.FieldAPIError] = res.Detail
		}

		switch res.Status {
		case invoice.SubmissionSuccess:
			sum.SubmitSuccess++
		case invoice.SubmissionFailed:
			sum.SubmitFailed++
			p.logger.Warn("submission failed",
				"run_id", sum.RunID,
				"file", rec.Text(invoice.FieldSourceFile),
				"detail", res.Detail)
		default:
			sum.SubmitSkipped++
		}

		rows = append(rows, row)
	}

	p.logger.Info("batch run complete",
		"run_id", sum.RunID,
		"approved", sum.Approved,
		"needs_review", sum.NeedsReview,
		"submit_success", sum.SubmitSuccess,
		"submit_failed", sum.SubmitFailed,
		"submit_skipped", sum.SubmitSkipped)

	return rows, sum
}
