package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/invoicecheck/telemetry"
	"github.com/robinvdvleuten/invoicecheck/web"
)

type WebCmd struct {
	Dir    string `help:"Directory of invoice JSON documents to watch." arg:"" optional:"" default:"invoices"`
	Port   int    `help:"Port to listen on." default:"8080"`
	Create bool   `help:"Automatically create the directory if it doesn't exist (no confirmation prompt)." short:"c"`
}

func (cmd *WebCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx := context.Background()

	if globals.Telemetry {
		collector := telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		defer func() {
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr)
		}()
	}

	dir, err := filepath.Abs(cmd.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			shouldCreate := cmd.Create

			if !shouldCreate {
				confirmed, err := promptYesNo(ctx, fmt.Sprintf("Directory %q does not exist. Create it?", dir))
				if err != nil {
					return fmt.Errorf("failed to read confirmation: %w", err)
				}
				shouldCreate = confirmed
			}

			if !shouldCreate {
				return fmt.Errorf("directory does not exist: %s", dir)
			}

			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create directory: %w", err)
			}

			printInfof(ctx.Stdout, "Created empty invoice directory: %s", pathStyle.Render(dir))
		} else {
			return fmt.Errorf("failed to access directory: %w", err)
		}
	}

	version := Version
	if version == "" {
		version = "dev"
	}
	commitSHA := CommitSHA
	if commitSHA == "" {
		commitSHA = "local"
	}

	server := web.NewWithVersion(cmd.Port, dir, version, commitSHA)

	printInfof(ctx.Stdout, "Starting server on %s:%d", server.Host, cmd.Port)
	printInfof(ctx.Stdout, "Watching invoices: %s", pathStyle.Render(dir))

	return server.Start(runCtx)
}
