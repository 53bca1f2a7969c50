package validator

import (
	"fmt"
	"strings"
)

// Severity represents the impact of a validation issue.
type Severity int

const (
	// SeverityError indicates a blocking validation failure.
	SeverityError Severity = iota
	// SeverityWarning indicates a recommended but non-blocking issue.
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Issue represents a single validation finding.
type Issue struct {
	// Severity indicates the impact of the issue.
	Severity Severity
	// Field identifies the frontmatter field or body check (optional).
	Field string
	// Message is the human-readable text shown to the user.
	Message string
}

// Error implements the error interface.
func (i Issue) Error() string {
	var sb strings.Builder
	sb.WriteString(i.Severity.String())
	sb.WriteString(": ")
	if i.Field != "" {
		fmt.Fprintf(&sb, "field %q: ", i.Field)
	}
	sb.WriteString(i.Message)
	return sb.String()
}

// Result aggregates validation issues in the order they were added.
type Result struct {
	Issues []Issue
}

// Passed reports whether the result contains no errors. Warnings never fail
// a result.
func (r *Result) Passed() bool {
	return !r.HasErrors()
}

// HasErrors returns true if any issue has SeverityError.
func (r *Result) HasErrors() bool {
	return r.count(SeverityError) > 0
}

// HasWarnings returns true if any issue has SeverityWarning.
func (r *Result) HasWarnings() bool {
	return r.count(SeverityWarning) > 0
}

// AddError appends an error issue to the result.
func (r *Result) AddError(field, message string) {
	r.Issues = append(r.Issues, Issue{
		Severity: SeverityError,
		Field:    field,
		Message:  message,
	})
}

// AddWarning appends a warning issue to the result.
func (r *Result) AddWarning(field, message string) {
	r.Issues = append(r.Issues, Issue{
		Severity: SeverityWarning,
		Field:    field,
		Message:  message,
	})
}

// Errors returns all issues with SeverityError, in insertion order.
func (r *Result) Errors() []Issue {
	return r.filter(SeverityError)
}

// Warnings returns all issues with SeverityWarning, in insertion order.
func (r *Result) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

// ErrorMessages returns the messages of all errors, in insertion order.
func (r *Result) ErrorMessages() []string {
	return messages(r.Errors())
}

// WarningMessages returns the messages of all warnings, in insertion order.
func (r *Result) WarningMessages() []string {
	return messages(r.Warnings())
}

func (r *Result) count(s Severity) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, i := range r.Issues {
		if i.Severity == s {
			n++
		}
	}
	return n
}

func (r *Result) filter(s Severity) []Issue {
	if r == nil {
		return nil
	}
	var res []Issue
	for _, i := range r.Issues {
		if i.Severity == s {
			res = append(res, i)
		}
	}
	return res
}

func messages(issues []Issue) []string {
	if len(issues) == 0 {
		return nil
	}
	out := make([]string, len(issues))
	for i, issue := range issues {
		out[i] = issue.Message
	}
	return out
}
