package rules

import (
	"github.com/ecmalint/ecmalint/internal/rule"
	"github.com/ecmalint/ecmalint/pkg/ast"
)

const noCompareNegZeroCode = "no-compare-neg-zero"

var comparisonOps = map[string]bool{
	"==": true, "===": true, "!=": true, "!==": true,
	"<": true, "<=": true, ">": true, ">=": true,
}

// NoCompareNegZero bans comparisons against negative zero, which behave
// like comparisons against positive zero and are almost always a mistake.
type NoCompareNegZero struct{}

func (NoCompareNegZero) Code() string     { return noCompareNegZeroCode }
func (NoCompareNegZero) Tags() []rule.Tag { return recommended() }

func (NoCompareNegZero) Handlers() rule.Handlers {
	return rule.Handlers{
		ast.KindBinaryExpression: func(ctx *rule.Context, node *ast.Node) {
			if !comparisonOps[node.Text] {
				return
			}

			if !isNegZero(node.ChildByField("left")) && !isNegZero(node.ChildByField("right")) {
				return
			}

			ctx.AddDiagnosticWithHint(
				node.Span,
				noCompareNegZeroCode,
				"Do not compare against -0",
				"Use `Object.is(x, -0)` to distinguish -0 from +0",
			)
		},
	}
}

func isNegZero(n *ast.Node) bool {
	if n == nil || n.Kind != ast.KindUnaryExpression || n.Text != "-" {
		return false
	}

	operand := n.ChildByField("argument")
	if operand == nil && len(n.Children) == 1 {
		operand = n.Children[0]
	}

	return operand != nil && operand.Kind == ast.KindNumber && operand.Text == "0"
}
