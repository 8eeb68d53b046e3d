package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stf/internal/cli"
	"stf/internal/cli/commands"
	"stf/internal/config"
	"stf/pkg/harness"

	// Suites self-register from their init functions; linking the package
	// in is all it takes to make them discoverable.
	_ "stf/internal/selftest"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "stf",
		Short:         "Suite test framework",
		Long:          `A minimal unit-testing harness: suites of named cases register themselves before main runs, and the runner executes them all and reports pass/fail results.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cfg := config.Load()

	var flags cli.Flags

	cmds := commands.NewCommands(cfg, harness.DefaultRegistry)
	cmds.Register(rootCmd, &flags)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, commands.ErrTestsFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
