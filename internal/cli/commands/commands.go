// Package commands wires the CLI commands to the engine, the storage and
// the failure viewer.
package commands

import (
	"github.com/spf13/cobra"

	"stf/internal/cli"
	"stf/internal/config"
	"stf/internal/storage"
	"stf/internal/ui"
	"stf/pkg/harness"
)

// Commands holds all CLI commands.
type Commands struct {
	Run   *RunCommand
	List  *ListCommand
	Fails *FailsCommand
}

// NewCommands creates all commands over the given registry with their
// dependencies.
func NewCommands(cfg *config.Config, registry *harness.Registry) *Commands {
	jsonStorage := storage.NewJSONStorage(cfg)
	viewer := ui.NewFailureViewer(jsonStorage)

	return &Commands{
		Run:   NewRunCommand(cfg, registry, jsonStorage),
		List:  NewListCommand(registry),
		Fails: NewFailsCommand(jsonStorage, viewer),
	}
}

// Register registers all commands with cobra.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags) {
	runCmd := &cobra.Command{
		Use:   "run [report-file]",
		Short: "Run every registered suite",
		Long:  "Execute every registered suite's cases in registration order and write the report to the optional report file, or stderr.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Run.Execute(flags, args)
		},
	}
	runCmd.Flags().StringVarP(&flags.ReportFile, "report", "o", "", "Report file path (same as the positional argument)")
	runCmd.Flags().BoolVar(&flags.NoProgress, "no-progress", false, "Disable the progress bar")
	rootCmd.AddCommand(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered suites",
		Long:  "List registered suites without running them",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.List.Execute(flags)
		},
	}
	listCmd.Flags().BoolVarP(&flags.Cases, "cases", "c", false, "Also list each suite's cases in registration order")
	rootCmd.AddCommand(listCmd)

	failsCmd := &cobra.Command{
		Use:   "fails",
		Short: "View the last run's failures interactively",
		Long:  "Display the failures persisted by the last run in an interactive viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Fails.Execute()
		},
	}
	rootCmd.AddCommand(failsCmd)
}
