package commands

import (
	"errors"
	"fmt"

	"stf/internal/cli"
	"stf/internal/config"
	"stf/internal/storage"
	"stf/pkg/harness"
	"stf/pkg/report"
	"stf/pkg/runner"
)

// ErrTestsFailed signals that the run completed but at least one case
// failed. The entry point maps it to exit code 1 without an error message;
// the report already said everything.
var ErrTestsFailed = errors.New("tests failed")

// RunCommand handles the run command.
type RunCommand struct {
	config   *config.Config
	registry *harness.Registry
	storage  storage.Storage
}

// NewRunCommand creates a new RunCommand.
func NewRunCommand(cfg *config.Config, registry *harness.Registry, st storage.Storage) *RunCommand {
	return &RunCommand{
		config:   cfg,
		registry: registry,
		storage:  st,
	}
}

// Execute runs every registered suite and persists the results. The
// optional positional argument is the report file path.
func (rc *RunCommand) Execute(flags *cli.Flags, args []string) error {
	reportPath := rc.config.ReportFile
	if flags.ReportFile != "" {
		reportPath = flags.ReportFile
	}
	if len(args) > 0 {
		reportPath = args[0]
	}

	rep := report.Open(reportPath)
	r := runner.New(rc.registry, rep)
	// The bar writes to stderr, so only show it when the report goes to
	// a file.
	if rep.ToFile() && !flags.NoProgress {
		r.SetProgress(runner.NewBar)
	}

	sum := r.RunAll()
	if err := rep.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}

	if err := rc.storage.Save(sum); err != nil {
		return fmt.Errorf("save run results: %w", err)
	}

	if !sum.Passed() {
		return ErrTestsFailed
	}
	return nil
}
