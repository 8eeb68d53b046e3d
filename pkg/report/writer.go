// Package report writes the line-oriented, ANSI-colored run report. The
// format is meant for humans; the only machine-readable output of a run is
// the process exit code.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// resultColumn is the column the "[PASSED]"/"[FAILED]" banner is padded to
// with "-" fill.
const resultColumn = 60

var (
	headerColor = color.New(color.FgWhite)
	passColor   = color.New(color.FgGreen)
	failColor   = color.New(color.FgRed)
	logColor    = color.New(color.FgRed)
)

// Writer emits the run report to a single destination, either a file or
// the standard error stream.
type Writer struct {
	out  io.Writer
	file *os.File
}

// NewWriter returns a Writer that reports to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Open returns a Writer for the given report path. An empty path selects
// stderr. An unusable path degrades to stderr with a one-line diagnostic;
// the run itself proceeds either way.
func Open(path string) *Writer {
	if path == "" {
		return &Writer{out: os.Stderr}
	}
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not create report file %s: %v\n", path, err)
		return &Writer{out: os.Stderr}
	}
	fmt.Fprintf(os.Stderr, "writing report to %s\n", path)
	return &Writer{out: f, file: f}
}

// ToFile reports whether the writer is backed by a file.
func (w *Writer) ToFile() bool {
	return w.file != nil
}

// BeginSuite announces a suite before its cases run.
func (w *Writer) BeginSuite(name string) {
	headerColor.Fprintf(w.out, "\nBegin testing:%s\n", name)
}

// BeginCase announces a case before it runs.
func (w *Writer) BeginCase(name string) {
	headerColor.Fprintf(w.out, "Running:%s\n", name)
}

// CaseResult prints the banner line for a single case.
func (w *Writer) CaseResult(passed bool) {
	w.banner(passed)
	fmt.Fprintln(w.out)
}

// SuiteSummary prints a suite's accumulated diagnostic log, its pass count
// and its result banner.
func (w *Writer) SuiteSummary(name string, passed, total int, log string) {
	logColor.Fprintf(w.out, "%s\n", log)
	passColor.Fprintf(w.out, "Result completed tests [%d/%d]\n", passed, total)
	headerColor.Fprintf(w.out, "%s Completed with result\n", name)
	w.banner(passed == total)
	fmt.Fprint(w.out, "\n\n")
}

// Overall prints the final result banner for the whole run.
func (w *Writer) Overall(passed bool) {
	headerColor.Fprintln(w.out, "Testing ended with result")
	w.banner(passed)
	fmt.Fprintln(w.out)
}

// Close flushes and closes the destination when it is a file. Closing a
// stderr-backed writer is a no-op.
func (w *Writer) Close() error {
	if w.file == nil {
		return nil
	}
	if err := w.file.Sync(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

func (w *Writer) banner(passed bool) {
	fmt.Fprint(w.out, strings.Repeat("-", resultColumn-1))
	if passed {
		fmt.Fprint(w.out, "[", passColor.Sprint("PASSED"), "]")
	} else {
		fmt.Fprint(w.out, "[", failColor.Sprint("FAILED"), "]")
	}
}
