// Package harness holds the test engine: suites of named cases, their
// execution state and the registry that makes suites discoverable before
// a run starts.
package harness

// Case is an immutable (name, action) pair. The action takes no arguments
// and records failures through the owning suite's assert methods.
type Case struct {
	Name string
	Run  func()
}

// Status is the execution state of a single case.
type Status int

const (
	// StatusNotRun indicates the case has not been executed yet.
	StatusNotRun Status = iota
	// StatusPassed indicates the last run passed.
	StatusPassed
	// StatusFailed indicates the last run failed.
	StatusFailed
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	default:
		return "not run"
	}
}

// Instance is implemented by a test suite: any type that embeds Suite and
// provides Define. Define is called exactly once, right after construction,
// to populate the case table.
type Instance interface {
	// Define populates the case table via RegisterCase.
	Define()
	// CaseNames returns case names in registration order.
	CaseNames() []string
	// RunCase executes one case by name and reports whether it passed.
	RunCase(name string) bool
	// RunAll executes every case in registration order and reports
	// whether all of them passed.
	RunAll() bool
	// Result returns the status of one case.
	Result(name string) Status
	// Results returns the status of every case in registration order.
	Results() []Status
	// Log returns the diagnostic text accumulated during execution.
	Log() string
	// ResetLog clears the diagnostic buffer.
	ResetLog()
}
