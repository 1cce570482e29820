// Package traverse implements the single-pass AST dispatcher. One pre-order
// walk serves every active rule: per node, the callbacks of all rules
// registered for that node's kind run in registry order. Cost is
// O(nodes) x O(callbacks per kind), not O(rules) x O(nodes).
package traverse

import (
	"github.com/ecmalint/ecmalint/internal/rule"
	"github.com/ecmalint/ecmalint/pkg/ast"
)

type entry struct {
	code string
	fn   rule.Handler
}

// Dispatcher routes nodes to rule callbacks. Built once per active rule
// set; safe to reuse across files since it holds no per-file state.
type Dispatcher struct {
	table map[ast.NodeKind][]entry
}

// NewDispatcher builds the callback table for the active rules. The rules
// slice must already be in registry order; relative order is preserved per
// node kind.
func NewDispatcher(active []rule.Rule) *Dispatcher {
	table := make(map[ast.NodeKind][]entry)

	for _, r := range active {
		for kind, fn := range r.Handlers() {
			table[kind] = append(table[kind], entry{code: r.Code(), fn: fn})
		}
	}

	return &Dispatcher{table: table}
}

// Run walks the tree rooted at root exactly once, parent before children,
// siblings left to right, invoking registered callbacks per node. A panic
// in a callback is a bug in that rule and propagates: partial diagnostics
// from a broken run must not be reported.
func (d *Dispatcher) Run(ctx *rule.Context, root *ast.Node) {
	if root == nil {
		return
	}

	d.visit(ctx, root)
}

func (d *Dispatcher) visit(ctx *rule.Context, n *ast.Node) {
	for _, e := range d.table[n.Kind] {
		e.fn(ctx, n)
	}

	for _, c := range n.Children {
		d.visit(ctx, c)
	}
}

// KindCount returns how many node kinds have at least one callback.
func (d *Dispatcher) KindCount() int {
	return len(d.table)
}
