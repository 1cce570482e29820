package rules

import (
	"fmt"

	"github.com/ecmalint/ecmalint/internal/rule"
	"github.com/ecmalint/ecmalint/pkg/ast"
)

const validTypeofCode = "valid-typeof"

var typeofValues = map[string]bool{
	"undefined": true,
	"object":    true,
	"boolean":   true,
	"number":    true,
	"string":    true,
	"function":  true,
	"symbol":    true,
	"bigint":    true,
}

var equalityOps = map[string]bool{
	"==": true, "===": true, "!=": true, "!==": true,
}

// ValidTypeof reports comparisons of a `typeof` expression against a
// string that can never be its value, which usually means a typo like
// `typeof x === "strnig"`.
type ValidTypeof struct{}

func (ValidTypeof) Code() string     { return validTypeofCode }
func (ValidTypeof) Tags() []rule.Tag { return recommended() }

func (ValidTypeof) Handlers() rule.Handlers {
	return rule.Handlers{
		ast.KindBinaryExpression: func(ctx *rule.Context, node *ast.Node) {
			if !equalityOps[node.Text] {
				return
			}

			left := node.ChildByField("left")
			right := node.ChildByField("right")

			checkTypeofOperand(ctx, left, right)
			checkTypeofOperand(ctx, right, left)
		},
	}
}

func checkTypeofOperand(ctx *rule.Context, typeofSide, other *ast.Node) {
	if typeofSide == nil || other == nil {
		return
	}

	if typeofSide.Kind != ast.KindUnaryExpression || typeofSide.Text != "typeof" {
		return
	}

	if other.Kind != ast.KindString {
		return
	}

	value := unquote(other.Text)
	if typeofValues[value] {
		return
	}

	ctx.AddDiagnosticWithHint(
		other.Span,
		validTypeofCode,
		fmt.Sprintf("%q is not a possible result of `typeof`", value),
		"Compare against one of the eight typeof strings",
	)
}

// unquote strips the surrounding quote characters of a string literal's
// source text.
func unquote(text string) string {
	if len(text) >= 2 {
		first, last := text[0], text[len(text)-1]
		if first == last && (first == '\'' || first == '"' || first == '`') {
			return text[1 : len(text)-1]
		}
	}

	return text
}
