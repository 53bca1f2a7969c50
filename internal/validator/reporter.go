package validator

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/thoreinstein/skillcheck/internal/errors"
)

// Markers printed in front of each reported line.
const (
	successMarker = "✓"
	errorMarker   = "✗"
	warningMarker = "⚠"
)

// Reporter formats and writes validation results.
type Reporter struct {
	out io.Writer
}

// NewReporter creates a new Reporter writing to out.
// Colors follow the fatih/color global NoColor setting.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Report writes the validation result for path:
//
//	Validating: <path>
//
// followed by either a success line or an Errors block and/or a Warnings
// block, each listing messages in the order they were found.
func (r *Reporter) Report(path string, result *Result) error {
	if result == nil {
		result = &Result{}
	}

	w := &errWriter{w: r.out}
	w.printf("Validating: %s\n\n", path)

	if !result.HasErrors() && !result.HasWarnings() {
		w.printf("%s\n", color.GreenString("%s Skill is valid", successMarker))
		return errors.Wrap(w.err, "writing report")
	}

	if errs := result.Errors(); len(errs) > 0 {
		w.printf("%s\n", color.New(color.FgRed, color.Bold).Sprint("Errors:"))
		for _, issue := range errs {
			w.printf("  %s %s\n", color.RedString(errorMarker), issue.Message)
		}
		w.printf("\n")
	}

	if warnings := result.Warnings(); len(warnings) > 0 {
		w.printf("%s\n", color.New(color.FgYellow, color.Bold).Sprint("Warnings:"))
		for _, issue := range warnings {
			w.printf("  %s %s\n", color.YellowString(warningMarker), issue.Message)
		}
		w.printf("\n")
	}

	return errors.Wrap(w.err, "writing report")
}

// errWriter keeps the first write error so Report can check once.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
