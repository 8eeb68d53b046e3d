package commands

import (
	"github.com/fatih/color"

	"stf/internal/cli"
	"stf/pkg/harness"
)

// ListCommand handles the list command.
type ListCommand struct {
	registry *harness.Registry
}

// NewListCommand creates a new ListCommand.
func NewListCommand(registry *harness.Registry) *ListCommand {
	return &ListCommand{registry: registry}
}

// Execute prints the registered suites. With the cases flag set it
// instantiates and defines each suite to show its cases in registration
// order, without running any of them.
func (lc *ListCommand) Execute(flags *cli.Flags) error {
	names := lc.registry.Names()
	color.Green("Registered %d suite(s):\n", len(names))

	for i, name := range names {
		last := i == len(names)-1
		if last {
			color.Cyan("└── %s", name)
		} else {
			color.Cyan("├── %s", name)
		}

		if !flags.Cases {
			continue
		}

		factory, _ := lc.registry.Factory(name)
		instance := factory()
		instance.Define()

		caseNames := instance.CaseNames()
		for j, caseName := range caseNames {
			prefix := "│   ├── "
			switch {
			case last && j == len(caseNames)-1:
				prefix = "    └── "
			case last:
				prefix = "    ├── "
			case j == len(caseNames)-1:
				prefix = "│   └── "
			}
			color.Yellow("%s%s", prefix, caseName)
		}
	}
	return nil
}
