package cli

// Flags holds command-line flags shared across commands.
type Flags struct {
	// ReportFile overrides the configured report destination.
	ReportFile string
	// NoProgress disables the progress bar during run.
	NoProgress bool
	// Cases makes list show each suite's cases, not just suite names.
	Cases bool
}
