package rules

import (
	"fmt"

	"github.com/ecmalint/ecmalint/internal/rule"
	"github.com/ecmalint/ecmalint/pkg/ast"
)

const eqeqeqCode = "eqeqeq"

// Eqeqeq requires strict equality operators.
type Eqeqeq struct{}

func (Eqeqeq) Code() string     { return eqeqeqCode }
func (Eqeqeq) Tags() []rule.Tag { return style() }

func (Eqeqeq) Handlers() rule.Handlers {
	return rule.Handlers{
		ast.KindBinaryExpression: func(ctx *rule.Context, node *ast.Node) {
			var want string

			switch node.Text {
			case "==":
				want = "==="
			case "!=":
				want = "!=="
			default:
				return
			}

			ctx.AddDiagnosticWithHint(
				node.Span,
				eqeqeqCode,
				fmt.Sprintf("expected '%s' and instead saw '%s'", want, node.Text),
				fmt.Sprintf("Use '%s'", want),
			)
		},
	}
}
