// Package runner drives the registry: it instantiates every registered
// suite, executes its cases in registration order and reports results
// through a report.Writer.
package runner

import (
	"time"

	"stf/pkg/harness"
	"stf/pkg/report"
)

// Failure records one failed case together with the diagnostic log its
// suite accumulated. Resolved is toggled by the failure viewer, never by
// the runner.
type Failure struct {
	Suite    string `json:"suite"`
	Case     string `json:"case"`
	Log      string `json:"log,omitempty"`
	Resolved bool   `json:"resolved"`
}

// Summary aggregates one run.
type Summary struct {
	Suites       int
	SuitesPassed int
	Cases        int
	CasesPassed  int
	Failures     []Failure
	Duration     time.Duration
}

// Passed reports whether every case of every suite passed. An empty run is
// a vacuous success.
func (s Summary) Passed() bool {
	return s.SuitesPassed == s.Suites
}

// Progress receives per-case pass/fail counts during a run.
type Progress interface {
	Update(passed, failed int)
	Finish()
}

// Runner executes every suite in a registry, one suite at a time, one case
// at a time. Construct one per run; it keeps no state between runs.
type Runner struct {
	registry *harness.Registry
	report   *report.Writer
	progress func(totalCases int) Progress
}

// New returns a Runner over the given registry, reporting to rep.
func New(registry *harness.Registry, rep *report.Writer) *Runner {
	return &Runner{registry: registry, report: rep}
}

// SetProgress installs a progress factory. It is called once per run with
// the total case count; pass NewBar for a terminal progress bar. Only use
// a stderr progress sink when the report goes elsewhere, or the two
// interleave.
func (r *Runner) SetProgress(factory func(totalCases int) Progress) {
	r.progress = factory
}

type definedSuite struct {
	name     string
	instance harness.Instance
}

// RunAll constructs and defines every registered suite, executes all cases
// and writes the report. Suites run in registration order; each instance
// is used for exactly one run and discarded.
func (r *Runner) RunAll() Summary {
	start := time.Now()

	// Define everything up front so the total case count is known before
	// the first case runs.
	suites := make([]definedSuite, 0, r.registry.Len())
	totalCases := 0
	for _, name := range r.registry.Names() {
		factory, _ := r.registry.Factory(name)
		instance := factory()
		instance.Define()
		suites = append(suites, definedSuite{name: name, instance: instance})
		totalCases += len(instance.CaseNames())
	}

	var progress Progress
	if r.progress != nil {
		progress = r.progress(totalCases)
	}

	sum := Summary{Suites: len(suites), Cases: totalCases}
	for _, s := range suites {
		r.report.BeginSuite(s.name)

		names := s.instance.CaseNames()
		passed := 0
		for _, caseName := range names {
			r.report.BeginCase(caseName)
			logMark := len(s.instance.Log())
			ok := s.instance.RunCase(caseName)
			r.report.CaseResult(ok)
			if ok {
				passed++
				sum.CasesPassed++
			} else {
				// The log only grows, so the slice past the mark is
				// exactly what this case appended.
				sum.Failures = append(sum.Failures, Failure{
					Suite: s.name,
					Case:  caseName,
					Log:   s.instance.Log()[logMark:],
				})
			}
			if progress != nil {
				progress.Update(sum.CasesPassed, len(sum.Failures))
			}
		}

		r.report.SuiteSummary(s.name, passed, len(names), s.instance.Log())
		if passed == len(names) {
			sum.SuitesPassed++
		}
	}

	if progress != nil {
		progress.Finish()
	}
	r.report.Overall(sum.Passed())
	sum.Duration = time.Since(start)
	return sum
}
