package harness

import (
	"bytes"
	"fmt"
	"math"
)

// Machine epsilon per float type, used as the absolute tolerance of the
// float asserts. An absolute tolerance is too tight for values far from 1.0;
// that limitation is kept deliberately, see EqualFloat64.
var (
	epsilon32 = float64(math.Nextafter32(1, 2) - 1)
	epsilon64 = math.Nextafter(1, 2) - 1
)

// Suite owns an ordered collection of cases plus per-case status. Embed it
// in a struct and implement Define to obtain an Instance:
//
//	type mathSuite struct{ harness.Suite }
//
//	func (s *mathSuite) Define() {
//		s.RegisterCase("AddPositive", func() { s.EqualInt(2+2, 4) })
//	}
//
// The zero value is ready to use. A Suite is not safe for concurrent use;
// cases run sequentially on a single goroutine.
type Suite struct {
	cases   []Case
	status  []Status
	current int
	running bool
	failed  bool
	log     bytes.Buffer
}

// RegisterCase appends a case to the suite. Names must be non-empty and
// unique within the suite; a violation is a programming error in the test
// author's code and panics.
func (s *Suite) RegisterCase(name string, run func()) {
	if name == "" {
		panic("harness: case name must not be empty")
	}
	if s.indexOf(name) >= 0 {
		panic(fmt.Sprintf("harness: duplicate case name %q", name))
	}
	s.cases = append(s.cases, Case{Name: name, Run: run})
	s.status = append(s.status, StatusNotRun)
}

// CaseNames returns case names in registration order.
func (s *Suite) CaseNames() []string {
	names := make([]string, len(s.cases))
	for i, c := range s.cases {
		names[i] = c.Name
	}
	return names
}

// RunCase executes one case by name and reports whether it passed. The
// case's previous status is overwritten. Running an unknown name is a
// programming error and panics.
func (s *Suite) RunCase(name string) bool {
	s.resetFlags()
	idx := s.indexOf(name)
	if idx < 0 {
		panic(fmt.Sprintf("harness: no case named %q", name))
	}
	s.current = idx
	s.running = true
	s.cases[idx].Run()
	if s.failed {
		s.status[idx] = StatusFailed
	} else {
		s.status[idx] = StatusPassed
	}
	s.running = false
	return !s.failed
}

// RunAll executes every case in registration order and reports whether all
// of them passed.
func (s *Suite) RunAll() bool {
	passed := 0
	for _, c := range s.cases {
		if s.RunCase(c.Name) {
			passed++
		}
	}
	return passed == len(s.cases)
}

// Result returns the status of one case. An unknown name reports
// StatusNotRun.
func (s *Suite) Result(name string) Status {
	if idx := s.indexOf(name); idx >= 0 {
		return s.status[idx]
	}
	return StatusNotRun
}

// Results returns a copy of the status of every case, indexed identically
// to CaseNames.
func (s *Suite) Results() []Status {
	out := make([]Status, len(s.status))
	copy(out, s.status)
	return out
}

// CurrentCase returns the index of the case being executed, or -1 when no
// case is running.
func (s *Suite) CurrentCase() int {
	if !s.running {
		return -1
	}
	return s.current
}

// True records a boolean expectation. A false expression marks the running
// case as failed. The expression is returned so call sites can short-circuit.
func (s *Suite) True(expr bool) bool {
	if !expr {
		s.failed = true
	}
	return expr
}

// False records an inverted boolean expectation. A true expression marks the
// running case as failed. The expression is returned unchanged.
func (s *Suite) False(expr bool) bool {
	if expr {
		s.failed = true
	}
	return expr
}

// EqualInt compares two integers exactly. On mismatch it logs a diagnostic
// line, marks the running case as failed and returns false.
func (s *Suite) EqualInt(value, expected int) bool {
	if value != expected {
		s.failEqual(value, expected)
		return false
	}
	return true
}

// EqualUint compares two unsigned integers exactly. On mismatch it logs a
// diagnostic line, marks the running case as failed and returns false.
func (s *Suite) EqualUint(value, expected uint) bool {
	if value != expected {
		s.failEqual(value, expected)
		return false
	}
	return true
}

// EqualFloat32 compares two float32 values within float32 machine epsilon.
// The tolerance is absolute, not relative, so values far from 1.0 compare
// stricter than the type can represent.
func (s *Suite) EqualFloat32(value, expected float32) bool {
	if math.Abs(float64(value)-float64(expected)) >= epsilon32 {
		s.failEqual(value, expected)
		return false
	}
	return true
}

// EqualFloat64 compares two float64 values within float64 machine epsilon.
// The tolerance is absolute, not relative, so values far from 1.0 compare
// stricter than the type can represent.
func (s *Suite) EqualFloat64(value, expected float64) bool {
	if math.Abs(value-expected) >= epsilon64 {
		s.failEqual(value, expected)
		return false
	}
	return true
}

// Logf appends a formatted line to the suite's diagnostic buffer.
func (s *Suite) Logf(format string, args ...any) {
	fmt.Fprintf(&s.log, format+"\n", args...)
}

// Log returns the diagnostic text accumulated during execution.
func (s *Suite) Log() string {
	return s.log.String()
}

// ResetLog clears the diagnostic buffer.
func (s *Suite) ResetLog() {
	s.log.Reset()
}

func (s *Suite) resetFlags() {
	s.failed = false
	s.running = false
	s.current = 0
}

func (s *Suite) indexOf(name string) int {
	for i, c := range s.cases {
		if c.Name == name {
			return i
		}
	}
	return -1
}

func (s *Suite) failEqual(value, expected any) {
	s.failed = true
	fmt.Fprintf(&s.log, "In:%s expected value to be %v but it was %v\n", s.currentName(), expected, value)
}

func (s *Suite) currentName() string {
	if !s.running || s.current >= len(s.cases) {
		return "<no case running>"
	}
	return s.cases[s.current].Name
}
