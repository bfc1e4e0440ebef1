package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Process ProcessCmd `cmd:"" help:"Validate a directory of invoices, submit them, and write the batch report."`
	Doctor  DoctorCmd  `cmd:"" help:"Doctor utilities for debugging invoice documents."`
	Web     WebCmd     `cmd:"" help:"Start the batch report dashboard."`
}
