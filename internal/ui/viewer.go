package ui

import "stf/internal/storage"

// Viewer displays run results in an interactive TUI.
type Viewer interface {
	View(results *storage.Output) error
}
