package rules

import (
	"github.com/ecmalint/ecmalint/internal/rule"
	"github.com/ecmalint/ecmalint/pkg/ast"
)

const noEmptyCode = "no-empty"

// NoEmpty reports empty block statements and empty switch statements. A
// block containing only a comment is deliberate and allowed, as are empty
// function bodies.
type NoEmpty struct{}

func (NoEmpty) Code() string     { return noEmptyCode }
func (NoEmpty) Tags() []rule.Tag { return recommended() }

func (NoEmpty) Handlers() rule.Handlers {
	return rule.Handlers{
		ast.KindStatementBlock: func(ctx *rule.Context, node *ast.Node) {
			if len(node.Children) > 0 {
				return
			}

			if node.Parent != nil && node.Parent.Kind.IsFunction() {
				return
			}

			if containsComment(ctx, node.Span) {
				return
			}

			ctx.AddDiagnosticWithHint(
				node.Span,
				noEmptyCode,
				"Empty block statement",
				"Add code or a comment to the empty block",
			)
		},
		ast.KindSwitchStatement: func(ctx *rule.Context, node *ast.Node) {
			body := node.ChildByField("body")
			if body == nil {
				return
			}

			for _, c := range body.Children {
				if c.Kind == ast.KindSwitchCase || c.Kind == ast.KindSwitchDefault {
					return
				}
			}

			if containsComment(ctx, body.Span) {
				return
			}

			ctx.AddDiagnosticWithHint(
				node.Span,
				noEmptyCode,
				"Empty switch statement",
				"Add a case or remove the switch statement",
			)
		},
	}
}

func containsComment(ctx *rule.Context, span ast.Span) bool {
	for _, c := range ctx.Comments() {
		if span.Contains(c.Span.Start.ByteOffset) {
			return true
		}
	}

	return false
}
