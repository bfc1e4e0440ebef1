package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/invoicecheck/loader"
	"github.com/robinvdvleuten/invoicecheck/pipeline"
	"github.com/robinvdvleuten/invoicecheck/report"
	"github.com/robinvdvleuten/invoicecheck/submit"
	"github.com/robinvdvleuten/invoicecheck/telemetry"
)

type ProcessCmd struct {
	Dir      string `help:"Directory of invoice JSON documents." arg:"" optional:"" default:"invoices" type:"existingdir"`
	Output   string `help:"Report destination; a .xlsx extension selects a workbook." default:"output/processed_invoices.csv" type:"path"`
	Endpoint string `help:"Submission endpoint URL. Rows are skipped when unset."`
	NoSubmit bool   `help:"Validate and report without submitting rows."`
	LogDir   string `help:"Directory receiving the run log." default:"logs" type:"path"`
}

func (cmd *ProcessCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx := context.Background()

	if globals.Telemetry {
		collector := telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		processTimer := collector.Start(fmt.Sprintf("process %s", filepath.Base(cmd.Dir)))
		defer func() {
			processTimer.End()
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr)
		}()
	}

	logFile, err := openRunLog(cmd.LogDir)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logPath := logFile.Name()
	logger := newRunLogger(logFile)

	loadTimer := telemetry.FromContext(runCtx).Start(fmt.Sprintf("load %s", filepath.Base(cmd.Dir)))
	records, loadFailures, err := loader.New(loader.WithLogger(logger)).Load(runCtx, cmd.Dir)
	loadTimer.End()
	if err != nil {
		return err
	}

	if loadFailures > 0 {
		printInfof(ctx.Stderr, "Skipped %d unreadable invoice document(s), see %s", loadFailures, pathStyle.Render(logPath))
	}

	if len(records) == 0 {
		printInfof(ctx.Stdout, "No invoices found in %s. Add .json documents and run again.", pathStyle.Render(cmd.Dir))
		return nil
	}

	rows, sum := pipeline.New(
		pipeline.WithSubmitter(cmd.submitter()),
		pipeline.WithLogger(logger),
	).Run(runCtx, records)

	reportTimer := telemetry.FromContext(runCtx).Start(fmt.Sprintf("write %s", filepath.Base(cmd.Output)))
	err = report.Write(rows, cmd.Output)
	reportTimer.End()
	if err != nil {
		return err
	}

	printSummary(ctx.Stdout, sum, loadFailures, cmd.Output, logPath)

	if sum.NeedsReview > 0 {
		printError(ctx.Stdout, fmt.Sprintf("%d invoice(s) need review", sum.NeedsReview))
	} else {
		printSuccess(ctx.Stdout, "All invoices approved")
	}

	return nil
}

// submitter picks the submission collaborator: the HTTP client when an
// endpoint is configured, otherwise the disabled variant.
func (cmd *ProcessCmd) submitter() submit.Submitter {
	if cmd.NoSubmit || cmd.Endpoint == "" {
		return submit.Disabled{}
	}
	return submit.NewClient(cmd.Endpoint)
}
