package rules

import (
	"regexp"
	"strings"

	"github.com/ecmalint/ecmalint/internal/rule"
	"github.com/ecmalint/ecmalint/pkg/ast"
)

const banUntaggedTodoCode = "ban-untagged-todo"

// taggedTodo matches TODO comments that carry an owner or an issue
// reference, e.g. TODO(@alice) or TODO(#123).
var taggedTodo = regexp.MustCompile(`(?i)^todo\((@[a-zA-Z0-9_-]+|#[0-9]+)\)`)

// BanUntaggedTodo requires TODO comments to name an owner or an issue, so
// they stay actionable. This rule scans comments rather than syntax nodes,
// so it hooks the program node and walks the comment list once.
type BanUntaggedTodo struct{}

func (BanUntaggedTodo) Code() string     { return banUntaggedTodoCode }
func (BanUntaggedTodo) Tags() []rule.Tag { return style() }

func (BanUntaggedTodo) Handlers() rule.Handlers {
	return rule.Handlers{
		ast.KindProgram: func(ctx *rule.Context, _ *ast.Node) {
			for _, comment := range ctx.Comments() {
				text := strings.TrimSpace(comment.Text)

				if !strings.HasPrefix(strings.ToLower(text), "todo") {
					continue
				}

				if taggedTodo.MatchString(text) {
					continue
				}

				ctx.AddDiagnosticWithHint(
					comment.Span,
					banUntaggedTodoCode,
					"TODO should be tagged with (@username) or (#issue)",
					"Add a user tag or issue reference, e.g. TODO(@alice) or TODO(#123)",
				)
			}
		},
	}
}
