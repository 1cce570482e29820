package rules

import (
	"github.com/ecmalint/ecmalint/internal/rule"
	"github.com/ecmalint/ecmalint/pkg/ast"
)

const noThrowLiteralCode = "no-throw-literal"

var literalKinds = map[ast.NodeKind]bool{
	ast.KindNumber:         true,
	ast.KindString:         true,
	ast.KindTemplateString: true,
	ast.KindRegex:          true,
	ast.KindTrue:           true,
	ast.KindFalse:          true,
	ast.KindNull:           true,
	ast.KindArray:          true,
	ast.KindObject:         true,
}

// NoThrowLiteral requires throwing error objects rather than literals, so
// catch sites can rely on a stack trace and a message.
type NoThrowLiteral struct{}

func (NoThrowLiteral) Code() string     { return noThrowLiteralCode }
func (NoThrowLiteral) Tags() []rule.Tag { return recommended() }

func (NoThrowLiteral) Handlers() rule.Handlers {
	return rule.Handlers{
		ast.KindThrowStatement: func(ctx *rule.Context, node *ast.Node) {
			if len(node.Children) == 0 {
				return
			}

			thrown := unwrapExpression(node.Children[0])
			if thrown == nil {
				return
			}

			switch {
			case thrown.Kind == ast.KindUndefined:
				ctx.AddDiagnostic(node.Span, noThrowLiteralCode, "Do not throw undefined")
			case literalKinds[thrown.Kind]:
				ctx.AddDiagnosticWithHint(
					node.Span,
					noThrowLiteralCode,
					"Expected an error object to be thrown",
					"Throw an instance of `Error` instead",
				)
			}
		},
	}
}
