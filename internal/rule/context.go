package rule

import (
	"github.com/ecmalint/ecmalint/internal/controlflow"
	"github.com/ecmalint/ecmalint/internal/diag"
	"github.com/ecmalint/ecmalint/pkg/ast"
)

// Context stores all data needed to lint one file. Exactly one Context
// exists per file run; it is created when the run starts, owned by the
// linter for the duration of the run, and discarded afterwards. It is not
// safe for concurrent use and never needs to be.
type Context struct {
	program     *ast.Program
	controlFlow *controlflow.Info
	diagnostics []diag.Diagnostic
}

// NewContext creates the per-file context.
func NewContext(program *ast.Program, controlFlow *controlflow.Info) *Context {
	return &Context{
		program:     program,
		controlFlow: controlFlow,
	}
}

// Program returns the file being linted.
func (c *Context) Program() *ast.Program {
	return c.program
}

// Comments returns every comment of the file in source order.
func (c *Context) Comments() []ast.Comment {
	return c.program.Comments
}

// ControlFlow returns the reachability analysis for the file.
func (c *Context) ControlFlow() *controlflow.Info {
	return c.controlFlow
}

// AddDiagnostic records a violation.
func (c *Context) AddDiagnostic(span ast.Span, code, message string) {
	c.diagnostics = append(c.diagnostics, diag.Diagnostic{
		Code:    code,
		Message: message,
		Range:   span,
	})
}

// AddDiagnosticWithHint records a violation with a fix hint.
func (c *Context) AddDiagnosticWithHint(span ast.Span, code, message, hint string) {
	c.diagnostics = append(c.diagnostics, diag.Diagnostic{
		Code:    code,
		Message: message,
		Hint:    hint,
		Range:   span,
	})
}

// Diagnostics returns everything recorded so far.
func (c *Context) Diagnostics() []diag.Diagnostic {
	return c.diagnostics
}
