package rules

import (
	"github.com/ecmalint/ecmalint/internal/rule"
	"github.com/ecmalint/ecmalint/pkg/ast"
)

const noDebuggerCode = "no-debugger"

// NoDebugger bans `debugger` statements, which halt execution when dev
// tools are open.
type NoDebugger struct{}

func (NoDebugger) Code() string     { return noDebuggerCode }
func (NoDebugger) Tags() []rule.Tag { return recommended() }

func (NoDebugger) Handlers() rule.Handlers {
	return rule.Handlers{
		ast.KindDebuggerStatement: func(ctx *rule.Context, node *ast.Node) {
			ctx.AddDiagnosticWithHint(
				node.Span,
				noDebuggerCode,
				"`debugger` statement is not allowed",
				"Remove the `debugger` statement",
			)
		},
	}
}
