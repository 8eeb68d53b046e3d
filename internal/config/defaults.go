package config

const (
	// DefaultReportFile is empty: the report goes to stderr unless a path
	// is supplied.
	DefaultReportFile = ""
	// DefaultResultsDir is the directory holding persisted run results.
	DefaultResultsDir = "storage"
	// DefaultResultsFile is the persisted run results file name.
	DefaultResultsFile = "test-results.json"
)
