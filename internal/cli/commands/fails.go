package commands

import (
	"fmt"

	"stf/internal/storage"
	"stf/internal/ui"
)

// FailsCommand handles the fails command.
type FailsCommand struct {
	storage storage.Storage
	viewer  ui.Viewer
}

// NewFailsCommand creates a new FailsCommand.
func NewFailsCommand(st storage.Storage, viewer ui.Viewer) *FailsCommand {
	return &FailsCommand{storage: st, viewer: viewer}
}

// Execute loads the last run's results and opens the failure viewer.
func (fc *FailsCommand) Execute() error {
	results, err := fc.storage.Load()
	if err != nil {
		return fmt.Errorf("no stored results, run the suites first: %w", err)
	}
	return fc.viewer.View(results)
}
