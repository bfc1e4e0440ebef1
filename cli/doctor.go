package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/robinvdvleuten/invoicecheck/invoice"
	"github.com/robinvdvleuten/invoicecheck/loader"
	"github.com/robinvdvleuten/invoicecheck/validate"
)

// DoctorCmd provides doctor utilities for debugging invoice documents.
type DoctorCmd struct {
	Record RecordCmd `cmd:"" help:"Show how a single invoice document parses and validates."`
}

// RecordCmd dumps the parsed record, its identity, and the verdict of
// every check for one invoice document.
type RecordCmd struct {
	File string `help:"Invoice JSON document." arg:"" type:"existingfile"`
}

// Run executes the record command.
func (cmd *RecordCmd) Run(ctx *kong.Context, globals *Globals) error {
	rec, err := loader.New().LoadFile(cmd.File)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	repr.New(ctx.Stdout, repr.Indent("  ")).Println(rec)
	_, _ = fmt.Fprintln(ctx.Stdout)

	if rec.HasIdentity() {
		printInfof(ctx.Stdout, "identity %s", rec.Key())
	} else {
		printInfof(ctx.Stdout, "identity incomplete, skips duplicate detection")
	}

	if amount, err := validate.ParseAmount(rec[invoice.FieldAmount]); err == nil {
		printInfof(ctx.Stdout, "amount parses to %s", amount.String())
	} else {
		printInfof(ctx.Stdout, "amount does not parse: %v", err)
	}

	if validate.ValidDate(rec[invoice.FieldInvoiceDate]) {
		printInfof(ctx.Stdout, "invoice_date is a valid ISO-8601 date")
	} else {
		printInfof(ctx.Stdout, "invoice_date is not a valid ISO-8601 date")
	}

	out := validate.Validate(rec, validate.NewTracker())
	if out.Approved() {
		printSuccess(ctx.Stdout, invoice.StatusApproved)
	} else {
		printError(ctx.Stdout, fmt.Sprintf("%s: %s", out.Status, strings.Join(out.Issues, ", ")))
	}

	return nil
}
