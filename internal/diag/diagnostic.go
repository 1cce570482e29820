// Package diag defines the diagnostic record produced by lint rules and its
// reporting order.
package diag

import (
	"fmt"
	"sort"

	"github.com/ecmalint/ecmalint/pkg/ast"
)

// Diagnostic is a single rule violation. Rules create diagnostics through
// the lint context; nothing mutates one afterwards.
type Diagnostic struct {
	// Code is the kebab-case rule code, e.g. "no-debugger".
	Code string

	// Message is the human-readable description of the violation.
	Message string

	// Hint optionally suggests how to fix the violation.
	Hint string

	// Range is the source span the violation points at.
	Range ast.Span
}

// String returns "(code) message" as used in reports.
func (d Diagnostic) String() string {
	return fmt.Sprintf("(%s) %s", d.Code, d.Message)
}

// Less orders diagnostics by start line, then start column, then code.
// The code tie-break keeps output stable when several rules fire on the
// same position.
func Less(a, b Diagnostic) bool {
	if a.Range.Start.Line != b.Range.Start.Line {
		return a.Range.Start.Line < b.Range.Start.Line
	}

	if a.Range.Start.Col != b.Range.Start.Col {
		return a.Range.Start.Col < b.Range.Start.Col
	}

	return a.Code < b.Code
}

// Sort sorts diagnostics in reporting order, stably.
func Sort(diagnostics []Diagnostic) {
	sort.SliceStable(diagnostics, func(i, j int) bool {
		return Less(diagnostics[i], diagnostics[j])
	})
}
