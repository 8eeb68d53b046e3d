// Package config holds runtime configuration: built-in defaults, optional
// .env overrides and the derived filesystem paths.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the harness binary.
type Config struct {
	// ReportFile is the report destination; empty means stderr.
	ReportFile string

	// ResultsDir/ResultsFile locate the persisted last-run results the
	// fails viewer reads.
	ResultsDir  string
	ResultsFile string
}

// New returns a Config with defaults.
func New() *Config {
	return &Config{
		ReportFile:  DefaultReportFile,
		ResultsDir:  DefaultResultsDir,
		ResultsFile: DefaultResultsFile,
	}
}

// Load returns a Config with defaults, then applies a .env file from the
// working directory (missing file is fine) and STF_* environment overrides.
// Flags are applied later by the commands and win over everything here.
func Load() *Config {
	cfg := New()

	// Ignore a missing .env; the environment may carry the values directly.
	_ = godotenv.Load()

	if v := os.Getenv("STF_REPORT_FILE"); v != "" {
		cfg.ReportFile = v
	}
	if v := os.Getenv("STF_RESULTS_DIR"); v != "" {
		cfg.ResultsDir = v
	}
	if v := os.Getenv("STF_RESULTS_FILE"); v != "" {
		cfg.ResultsFile = v
	}
	return cfg
}

// ResultsPath returns the absolute path of the results file so run and
// fails read/write the same file regardless of cwd.
func (c *Config) ResultsPath() string {
	p := filepath.Join(c.ResultsDir, c.ResultsFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
