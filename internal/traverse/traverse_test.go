package traverse_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ecmalint/ecmalint/internal/rule"
	"github.com/ecmalint/ecmalint/internal/traverse"
	"github.com/ecmalint/ecmalint/pkg/ast"
)

// countingRule records every node it is called for.
type countingRule struct {
	code    string
	kinds   []ast.NodeKind
	visited *[]*ast.Node
}

func (c countingRule) Code() string     { return c.code }
func (c countingRule) Tags() []rule.Tag { return nil }

func (c countingRule) Handlers() rule.Handlers {
	handlers := make(rule.Handlers, len(c.kinds))

	for _, k := range c.kinds {
		handlers[k] = func(_ *rule.Context, n *ast.Node) {
			*c.visited = append(*c.visited, n)
		}
	}

	return handlers
}

// metaRule has no handlers at all.
type metaRule struct{}

func (metaRule) Code() string            { return "meta" }
func (metaRule) Tags() []rule.Tag        { return nil }
func (metaRule) Handlers() rule.Handlers { return nil }

func buildTree() (*ast.Node, *ast.Node, *ast.Node, *ast.Node) {
	root := ast.NewNode(ast.KindProgram, ast.Span{})

	stmt := ast.NewNode(ast.KindExpressionStatement, ast.Span{
		Start: ast.Position{ByteOffset: 10},
	})
	root.AddChild(stmt)

	call := ast.NewNode(ast.KindCallExpression, ast.Span{
		Start: ast.Position{ByteOffset: 20},
	})
	stmt.AddChild(call)

	callee := ast.NewNode(ast.KindIdentifier, ast.Span{
		Start: ast.Position{ByteOffset: 30},
	})
	call.AddChild(callee)

	return root, stmt, call, callee
}

func newCtx(root *ast.Node) *rule.Context {
	return rule.NewContext(ast.NewProgram("test.js", "", root, nil), nil)
}

var _ = Describe("Dispatcher", func() {
	It("visits every node of a registered kind exactly once, pre-order", func() {
		root, stmt, call, callee := buildTree()

		var visited []*ast.Node

		d := traverse.NewDispatcher([]rule.Rule{countingRule{
			code: "count-all",
			kinds: []ast.NodeKind{
				ast.KindProgram,
				ast.KindExpressionStatement,
				ast.KindCallExpression,
				ast.KindIdentifier,
			},
			visited: &visited,
		}})

		d.Run(newCtx(root), root)

		Expect(visited).To(Equal([]*ast.Node{root, stmt, call, callee}))
	})

	It("skips nodes no rule registered for", func() {
		root, _, call, _ := buildTree()

		var visited []*ast.Node

		d := traverse.NewDispatcher([]rule.Rule{countingRule{
			code:    "calls-only",
			kinds:   []ast.NodeKind{ast.KindCallExpression},
			visited: &visited,
		}})

		d.Run(newCtx(root), root)

		Expect(visited).To(Equal([]*ast.Node{call}))
	})

	It("invokes rules on the same kind in registration order", func() {
		root, _, _, _ := buildTree()

		var order []string

		first := countingRule{code: "first", kinds: []ast.NodeKind{ast.KindCallExpression}}
		second := countingRule{code: "second", kinds: []ast.NodeKind{ast.KindCallExpression}}

		var firstSeen, secondSeen []*ast.Node

		first.visited = &firstSeen
		second.visited = &secondSeen

		recordingFirst := recorderRule{inner: first, order: &order}
		recordingSecond := recorderRule{inner: second, order: &order}

		d := traverse.NewDispatcher([]rule.Rule{recordingFirst, recordingSecond})
		d.Run(newCtx(root), root)

		Expect(order).To(Equal([]string{"first", "second"}))
	})

	It("tolerates rules without handlers", func() {
		root, _, _, _ := buildTree()

		d := traverse.NewDispatcher([]rule.Rule{metaRule{}})

		Expect(func() { d.Run(newCtx(root), root) }).NotTo(Panic())
	})

	It("propagates handler panics", func() {
		root, _, _, _ := buildTree()

		d := traverse.NewDispatcher([]rule.Rule{panickingRule{}})

		Expect(func() { d.Run(newCtx(root), root) }).To(Panic())
	})
})

// recorderRule wraps another rule and records its code on every call.
type recorderRule struct {
	inner countingRule
	order *[]string
}

func (r recorderRule) Code() string     { return r.inner.code }
func (r recorderRule) Tags() []rule.Tag { return nil }

func (r recorderRule) Handlers() rule.Handlers {
	handlers := make(rule.Handlers)

	for kind := range r.inner.Handlers() {
		handlers[kind] = func(_ *rule.Context, _ *ast.Node) {
			*r.order = append(*r.order, r.inner.code)
		}
	}

	return handlers
}

type panickingRule struct{}

func (panickingRule) Code() string     { return "boom" }
func (panickingRule) Tags() []rule.Tag { return nil }

func (panickingRule) Handlers() rule.Handlers {
	return rule.Handlers{
		ast.KindIdentifier: func(_ *rule.Context, _ *ast.Node) {
			panic("boom")
		},
	}
}
