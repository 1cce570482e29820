package ast

// Node is a single syntax-tree node. Nodes form an ordinary parent/child
// tree; children appear in source order. The engine treats nodes as
// read-only after the parser hands over the Program.
type Node struct {
	Kind NodeKind
	Span Span

	// Field is the grammatical role of this node within its parent
	// ("condition", "consequence", "left", ...); empty for positional
	// children.
	Field string

	// Text carries leaf content: identifier names, literal source text, and
	// the operator token for unary/binary/assignment expressions. Empty for
	// pure container nodes.
	Text string

	Parent   *Node
	Children []*Node
}

// NewNode constructs a node without a parent. Use AddChild to attach
// children so parent links stay consistent.
func NewNode(kind NodeKind, span Span) *Node {
	return &Node{Kind: kind, Span: span}
}

// AddChild appends child and sets its parent link. Returns n for chaining.
func (n *Node) AddChild(child *Node) *Node {
	child.Parent = n
	n.Children = append(n.Children, child)

	return n
}

// ChildByField returns the first child whose Field matches, or nil.
func (n *Node) ChildByField(field string) *Node {
	for _, c := range n.Children {
		if c.Field == field {
			return c
		}
	}

	return nil
}

// ChildrenByField returns all children whose Field matches.
func (n *Node) ChildrenByField(field string) []*Node {
	var out []*Node

	for _, c := range n.Children {
		if c.Field == field {
			out = append(out, c)
		}
	}

	return out
}

// FirstChildOfKind returns the first direct child of the given kind, or nil.
func (n *Node) FirstChildOfKind(kind NodeKind) *Node {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}

	return nil
}

// Statements returns the direct children that sit in statement position.
// For blocks and programs this is the statement sequence; for switch cases
// it is the case body.
func (n *Node) Statements() []*Node {
	var out []*Node

	for _, c := range n.Children {
		if c.Kind.IsStatement() {
			out = append(out, c)
		}
	}

	return out
}
