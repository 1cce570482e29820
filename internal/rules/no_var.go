package rules

import (
	"github.com/ecmalint/ecmalint/internal/rule"
	"github.com/ecmalint/ecmalint/pkg/ast"
)

const noVarCode = "no-var"

// NoVar bans `var` declarations in favor of block-scoped `let` and
// `const`.
type NoVar struct{}

func (NoVar) Code() string     { return noVarCode }
func (NoVar) Tags() []rule.Tag { return recommended() }

func (NoVar) Handlers() rule.Handlers {
	return rule.Handlers{
		ast.KindVariableDeclaration: func(ctx *rule.Context, node *ast.Node) {
			ctx.AddDiagnosticWithHint(
				node.Span,
				noVarCode,
				"`var` keyword is not allowed",
				"Use `let` or `const` instead",
			)
		},
	}
}
