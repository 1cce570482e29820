package rules

import (
	"github.com/ecmalint/ecmalint/internal/rule"
	"github.com/ecmalint/ecmalint/pkg/ast"
)

const noDeleteVarCode = "no-delete-var"

// NoDeleteVar bans `delete` on plain variables. Deleting a variable is a
// no-op in sloppy mode and a syntax error in strict mode; only property
// deletion is meaningful.
type NoDeleteVar struct{}

func (NoDeleteVar) Code() string     { return noDeleteVarCode }
func (NoDeleteVar) Tags() []rule.Tag { return recommended() }

func (NoDeleteVar) Handlers() rule.Handlers {
	return rule.Handlers{
		ast.KindUnaryExpression: func(ctx *rule.Context, node *ast.Node) {
			if node.Text != "delete" {
				return
			}

			operand := node.ChildByField("argument")
			if operand == nil && len(node.Children) == 1 {
				operand = node.Children[0]
			}

			if operand == nil || operand.Kind != ast.KindIdentifier {
				return
			}

			ctx.AddDiagnosticWithHint(
				node.Span,
				noDeleteVarCode,
				"Variables shouldn't be deleted",
				"Remove the `delete` expression",
			)
		},
	}
}
