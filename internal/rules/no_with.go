package rules

import (
	"github.com/ecmalint/ecmalint/internal/rule"
	"github.com/ecmalint/ecmalint/pkg/ast"
)

const noWithCode = "no-with"

// NoWith bans `with` statements.
type NoWith struct{}

func (NoWith) Code() string     { return noWithCode }
func (NoWith) Tags() []rule.Tag { return recommended() }

func (NoWith) Handlers() rule.Handlers {
	return rule.Handlers{
		ast.KindWithStatement: func(ctx *rule.Context, node *ast.Node) {
			ctx.AddDiagnostic(node.Span, noWithCode, "`with` statement is not allowed")
		},
	}
}
