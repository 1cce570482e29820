// Package jsparser turns JavaScript and TypeScript source into the
// engine's AST using tree-sitter grammars. The adapter maps grammar node
// types onto ast.NodeKind, hoists operator tokens and leaf text into
// Node.Text, and collects comments into the Program instead of the tree.
package jsparser

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/ecmalint/ecmalint/pkg/ast"
)

// ErrSyntax reports that the grammar could not parse the file.
var ErrSyntax = errors.New("syntax error")

// Parse parses one source file. The language is chosen by file extension;
// anything that is not TypeScript parses with the JavaScript grammar.
func Parse(ctx context.Context, filename string, source []byte) (*ast.Program, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(languageFor(filename))

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", filename)
	}

	root := tree.RootNode()
	if root.HasError() {
		return nil, errors.Wrapf(ErrSyntax, "parsing %s", filename)
	}

	b := &builder{source: source}
	program := b.node(root, "")

	return ast.NewProgram(filename, string(source), program, b.comments), nil
}

func languageFor(filename string) *sitter.Language {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".ts", ".mts", ".cts":
		return typescript.GetLanguage()
	case ".tsx":
		return tsx.GetLanguage()
	default:
		return javascript.GetLanguage()
	}
}

type builder struct {
	source   []byte
	comments []ast.Comment
}

// node converts one named tree-sitter node and its named descendants.
// Comment nodes become Program comments, not tree nodes.
func (b *builder) node(n *sitter.Node, field string) *ast.Node {
	out := ast.NewNode(kindFor(n.Type()), spanOf(n))
	out.Field = field
	out.Text = textFor(n, b.source)

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if !child.IsNamed() {
			continue
		}

		if child.Type() == "comment" {
			b.comment(child)

			continue
		}

		out.AddChild(b.node(child, n.FieldNameForChild(i)))
	}

	return out
}

func (b *builder) comment(n *sitter.Node) {
	raw := n.Content(b.source)

	kind := ast.CommentLine
	text := strings.TrimPrefix(raw, "//")

	if strings.HasPrefix(raw, "/*") {
		kind = ast.CommentBlock
		text = strings.TrimSuffix(strings.TrimPrefix(raw, "/*"), "*/")
	}

	b.comments = append(b.comments, ast.Comment{
		Kind: kind,
		Text: text,
		Span: spanOf(n),
	})
}

func spanOf(n *sitter.Node) ast.Span {
	return ast.Span{
		Start: position(n.StartPoint(), n.StartByte()),
		End:   position(n.EndPoint(), n.EndByte()),
	}
}

func position(p sitter.Point, offset uint32) ast.Position {
	return ast.Position{
		Line:       p.Row + 1,
		Col:        p.Column,
		ByteOffset: offset,
	}
}

// textFor extracts the content rules match on: leaf text for identifiers
// and literals, the operator token for operator-bearing expressions.
func textFor(n *sitter.Node, source []byte) string {
	switch kindFor(n.Type()) {
	case ast.KindIdentifier, ast.KindPropertyIdentifier,
		ast.KindNumber, ast.KindString, ast.KindTemplateString, ast.KindRegex,
		ast.KindTrue, ast.KindFalse, ast.KindNull, ast.KindUndefined,
		ast.KindThis, ast.KindSuper:
		return n.Content(source)
	case ast.KindBinaryExpression, ast.KindUnaryExpression,
		ast.KindUpdateExpression, ast.KindAugmentedAssignmentExpression:
		if op := n.ChildByFieldName("operator"); op != nil {
			return op.Content(source)
		}
	case ast.KindAssignmentExpression:
		return "="
	}

	return ""
}
