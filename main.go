package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/invoicecheck/cli"
)

var app struct {
	Version kong.VersionFlag `help:"Show version information"`
	cli.Commands
}

func main() {
	ctx := kong.Parse(&app,
		kong.Vars{
			"version": buildVersion(),
		},
		kong.Name("invoicecheck"),
		kong.Description("An invoice batch validation and reconciliation tool."),
		kong.UsageOnError(),
		kong.Bind(&app.Globals),
	)

	err := ctx.Run()

	// Commands that already printed their own diagnostics return a
	// CommandError carrying just the exit code.
	var cmdErr *cli.CommandError
	if errors.As(err, &cmdErr) {
		os.Exit(cmdErr.ExitCode())
	}

	ctx.FatalIfErrorf(err)
}

func buildVersion() string {
	// Version and CommitSHA live in the cli package so the web command
	// can report them too. They're set via ldflags when building.
	if cli.Version == "" {
		cli.Version = "dev"
	}
	if cli.CommitSHA == "" {
		return cli.Version
	}
	return fmt.Sprintf("%s (%s)", cli.Version, cli.CommitSHA)
}
