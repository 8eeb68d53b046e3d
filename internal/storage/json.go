package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"stf/pkg/runner"
)

// Save writes a run summary to the configured results file.
func (s *JSONStorage) Save(sum runner.Summary) error {
	output := Output{
		Meta: Meta{
			Suites:          sum.Suites,
			SuitesPassed:    sum.SuitesPassed,
			Cases:           sum.Cases,
			CasesPassed:     sum.CasesPassed,
			Duration:        sum.Duration.String(),
			DurationSeconds: sum.Duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Failures: sum.Failures,
	}
	return s.SaveOutput(&output)
}

// Load reads the last run's results from the configured results file.
func (s *JSONStorage) Load() (*Output, error) {
	path := s.cfg.ResultsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output Output
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured results file.
func (s *JSONStorage) SaveOutput(output *Output) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.ResultsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
