package runner

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stf/pkg/harness"
	"stf/pkg/report"
)

type mathSuite struct{ harness.Suite }

func (s *mathSuite) Define() {
	s.RegisterCase("AddPositive", func() { s.EqualInt(2+2, 4) })
	s.RegisterCase("DivideByZero", func() { s.EqualInt(1, 0) })
}

type stringsSuite struct{ harness.Suite }

func (s *stringsSuite) Define() {
	s.RegisterCase("Concat", func() { s.True("a"+"b" == "ab") })
	s.RegisterCase("Length", func() { s.EqualInt(len("abc"), 3) })
}

func newTestRunner(reg *harness.Registry) (*Runner, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(reg, report.NewWriter(&buf)), &buf
}

func TestRunner_MixedResults(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	reg := harness.NewRegistry()
	reg.Add("Math", func() harness.Instance { return &mathSuite{} })
	reg.Add("Strings", func() harness.Instance { return &stringsSuite{} })

	r, buf := newTestRunner(reg)
	sum := r.RunAll()

	assert.False(t, sum.Passed())
	assert.Equal(t, 2, sum.Suites)
	assert.Equal(t, 1, sum.SuitesPassed)
	assert.Equal(t, 4, sum.Cases)
	assert.Equal(t, 3, sum.CasesPassed)

	require.Len(t, sum.Failures, 1)
	failure := sum.Failures[0]
	assert.Equal(t, "Math", failure.Suite)
	assert.Equal(t, "DivideByZero", failure.Case)
	assert.Contains(t, failure.Log, "DivideByZero")
	assert.Contains(t, failure.Log, "0")
	assert.Contains(t, failure.Log, "1")

	out := buf.String()
	assert.Contains(t, out, "Begin testing:Math")
	assert.Contains(t, out, "Result completed tests [1/2]")
	assert.Contains(t, out, "Begin testing:Strings")
	assert.Contains(t, out, "Result completed tests [2/2]")
	assert.Contains(t, out, "Testing ended with result")
}

func TestRunner_CaseOrderFollowsRegistration(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	reg := harness.NewRegistry()
	reg.Add("Math", func() harness.Instance { return &mathSuite{} })

	r, buf := newTestRunner(reg)
	r.RunAll()

	out := buf.String()
	first := strings.Index(out, "Running:AddPositive")
	second := strings.Index(out, "Running:DivideByZero")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second, "cases must run in registration order")
}

func TestRunner_EmptyRegistry(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	r, buf := newTestRunner(harness.NewRegistry())
	sum := r.RunAll()

	assert.True(t, sum.Passed(), "an empty registry is a vacuous success")
	assert.Zero(t, sum.Suites)
	assert.Zero(t, sum.Cases)
	assert.Empty(t, sum.Failures)
	assert.Contains(t, buf.String(), "[PASSED]")
}

type countingProgress struct {
	total   int
	updates int
	passed  int
	failed  int
	done    bool
}

func (p *countingProgress) Update(passed, failed int) {
	p.updates++
	p.passed, p.failed = passed, failed
}

func (p *countingProgress) Finish() { p.done = true }

func TestRunner_Progress(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	reg := harness.NewRegistry()
	reg.Add("Math", func() harness.Instance { return &mathSuite{} })
	reg.Add("Strings", func() harness.Instance { return &stringsSuite{} })

	r, _ := newTestRunner(reg)
	var p *countingProgress
	r.SetProgress(func(total int) Progress {
		p = &countingProgress{total: total}
		return p
	})
	r.RunAll()

	require.NotNil(t, p)
	assert.Equal(t, 4, p.total, "progress must be sized before the first case runs")
	assert.Equal(t, 4, p.updates)
	assert.Equal(t, 3, p.passed)
	assert.Equal(t, 1, p.failed)
	assert.True(t, p.done)
}

type freshnessSuite struct {
	harness.Suite
	runs int
}

func (s *freshnessSuite) Define() {
	s.RegisterCase("FirstRunOnly", func() {
		s.runs++
		s.EqualInt(s.runs, 1)
	})
}

func TestRunner_UsesFreshInstancePerRun(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	reg := harness.NewRegistry()
	reg.Add("Freshness", func() harness.Instance { return &freshnessSuite{} })

	r1, _ := newTestRunner(reg)
	assert.True(t, r1.RunAll().Passed())

	// A second run constructs a new instance, so per-instance state does
	// not leak between runs.
	r2, _ := newTestRunner(reg)
	assert.True(t, r2.RunAll().Passed())
}
