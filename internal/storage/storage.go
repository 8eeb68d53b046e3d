// Package storage persists the last run's results so the fails viewer can
// work across invocations. This is run history, not a report format; the
// report stays the text protocol in pkg/report.
package storage

import (
	"stf/internal/config"
	"stf/pkg/runner"
)

// Meta describes one persisted run.
type Meta struct {
	Suites          int     `json:"suites"`
	SuitesPassed    int     `json:"suites_passed"`
	Cases           int     `json:"cases"`
	CasesPassed     int     `json:"cases_passed"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// Output is the complete persisted structure for one run.
type Output struct {
	Meta     Meta             `json:"meta"`
	Failures []runner.Failure `json:"failures"`
}

// Storage persists and loads run results.
type Storage interface {
	Save(sum runner.Summary) error
	Load() (*Output, error)
	// SaveOutput writes the full output back (e.g. after the viewer
	// toggles resolved marks).
	SaveOutput(output *Output) error
}

// JSONStorage stores results in a JSON file under the configured results
// path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's results
// path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
