package rules

import (
	"github.com/ecmalint/ecmalint/internal/rule"
	"github.com/ecmalint/ecmalint/pkg/ast"
)

const noEvalCode = "no-eval"

// NoEval bans calls to `eval`, including paren-wrapped and comma-operator
// forms like `(eval)(src)` and `(0, eval)(src)`.
type NoEval struct{}

func (NoEval) Code() string     { return noEvalCode }
func (NoEval) Tags() []rule.Tag { return recommended() }

func (NoEval) Handlers() rule.Handlers {
	return rule.Handlers{
		ast.KindCallExpression: func(ctx *rule.Context, node *ast.Node) {
			callee := unwrapExpression(node.ChildByField("function"))
			if callee == nil {
				return
			}

			if callee.Kind == ast.KindIdentifier && callee.Text == "eval" {
				ctx.AddDiagnosticWithHint(
					callee.Span,
					noEvalCode,
					"`eval` call is not allowed",
					"Remove the use of `eval`",
				)
			}
		},
	}
}

// unwrapExpression strips parentheses and takes the final operand of a
// comma sequence, which is the value the expression evaluates to.
func unwrapExpression(n *ast.Node) *ast.Node {
	for n != nil {
		switch n.Kind {
		case ast.KindParenthesizedExpression:
			if len(n.Children) == 0 {
				return nil
			}

			n = n.Children[0]
		case ast.KindSequenceExpression:
			if len(n.Children) == 0 {
				return nil
			}

			n = n.Children[len(n.Children)-1]
		default:
			return n
		}
	}

	return nil
}
