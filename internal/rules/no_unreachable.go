package rules

import (
	"github.com/ecmalint/ecmalint/internal/rule"
	"github.com/ecmalint/ecmalint/pkg/ast"
)

const noUnreachableCode = "no-unreachable"

// NoUnreachable reports statements that control flow can never reach. It
// consumes the reachability facts computed before traversal and registers
// the same handler for every statement kind.
//
// Function declarations are hoisted and therefore never unreachable, and a
// `var` declaration without initializers hoists its bindings with no
// runtime effect, so neither is reported.
type NoUnreachable struct{}

func (NoUnreachable) Code() string     { return noUnreachableCode }
func (NoUnreachable) Tags() []rule.Tag { return recommended() }

func (NoUnreachable) Handlers() rule.Handlers {
	handlers := make(rule.Handlers)

	for _, kind := range ast.StatementKinds() {
		handlers[kind] = checkReachable
	}

	return handlers
}

func checkReachable(ctx *rule.Context, node *ast.Node) {
	switch node.Kind {
	case ast.KindFunctionDeclaration, ast.KindGeneratorFunctionDeclaration:
		return
	case ast.KindVariableDeclaration:
		if !hasInitializer(node) {
			return
		}
	}

	if ctx.ControlFlow().IsReachable(node.Span.Start) {
		return
	}

	ctx.AddDiagnosticWithHint(
		node.Span,
		noUnreachableCode,
		"This statement is unreachable",
		"Remove the statement or restructure the control flow",
	)
}

func hasInitializer(decl *ast.Node) bool {
	for _, declarator := range decl.Children {
		if declarator.Kind != ast.KindVariableDeclarator {
			continue
		}

		if declarator.ChildByField("value") != nil {
			return true
		}
	}

	return false
}
