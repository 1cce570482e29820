// Package report renders lint results for humans and machines. The pretty
// reporter mirrors compiler-style output with the offending source line and
// a caret underline; the compact reporter emits one line per diagnostic;
// the JSON reporter serializes everything for tooling.
package report

import (
	"io"

	"github.com/cockroachdb/errors"

	"github.com/ecmalint/ecmalint/internal/diag"
	"github.com/ecmalint/ecmalint/pkg/ast"
)

// File pairs one linted file with its diagnostics. Program carries the
// source so the pretty reporter can quote offending lines; it may be nil
// when the file failed before parsing.
type File struct {
	Filename    string
	Program     *ast.Program
	Diagnostics []diag.Diagnostic
	Err         error
}

// Reporter renders a batch of lint results.
type Reporter interface {
	Report(files []File) error
}

// Format names a reporter on the command line.
type Format string

const (
	FormatPretty  Format = "pretty"
	FormatCompact Format = "compact"
	FormatJSON    Format = "json"
)

// New returns the reporter for the given format.
func New(format Format, w io.Writer, opts Options) (Reporter, error) {
	switch format {
	case FormatPretty:
		return NewPretty(w, opts), nil
	case FormatCompact:
		return NewCompact(w), nil
	case FormatJSON:
		return NewJSON(w), nil
	default:
		return nil, errors.Newf("unknown output format %q", format)
	}
}

// Total counts diagnostics across all files.
func Total(files []File) int {
	total := 0

	for _, f := range files {
		total += len(f.Diagnostics)
	}

	return total
}
