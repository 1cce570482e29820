// Package testkit builds AST fixtures for engine tests without going
// through a real grammar. Tests write the source text, locate spans in it
// with SpanOf, and assemble nodes with the ast constructors; comments are
// scanned straight out of the text so directive fixtures stay honest.
package testkit

import (
	"fmt"
	"strings"

	"github.com/ecmalint/ecmalint/pkg/ast"
)

// PositionAt computes the position of a byte offset within source.
func PositionAt(source string, offset int) ast.Position {
	line := uint32(1)
	col := uint32(0)

	for i := 0; i < offset && i < len(source); i++ {
		if source[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}

	return ast.Position{Line: line, Col: col, ByteOffset: uint32(offset)}
}

// SpanOf returns the span of the nth occurrence (1-based) of needle in
// source. It panics when the occurrence does not exist, which in a test is
// a broken fixture.
func SpanOf(source, needle string, occurrence int) ast.Span {
	offset := -1
	from := 0

	for i := 0; i < occurrence; i++ {
		idx := strings.Index(source[from:], needle)
		if idx < 0 {
			panic(fmt.Sprintf("testkit: occurrence %d of %q not found", occurrence, needle))
		}

		offset = from + idx
		from = offset + len(needle)
	}

	return ast.Span{
		Start: PositionAt(source, offset),
		End:   PositionAt(source, offset+len(needle)),
	}
}

// ScanComments extracts line and block comments from source the way a
// parser would, with delimiters stripped. String literals are skipped so a
// quoted "//" is not a comment.
func ScanComments(source string) []ast.Comment {
	var comments []ast.Comment

	for i := 0; i < len(source); i++ {
		switch source[i] {
		case '\'', '"', '`':
			i = skipQuoted(source, i)
		case '/':
			if i+1 >= len(source) {
				break
			}

			switch source[i+1] {
			case '/':
				end := strings.IndexByte(source[i:], '\n')
				if end < 0 {
					end = len(source) - i
				}

				comments = append(comments, ast.Comment{
					Kind: ast.CommentLine,
					Text: source[i+2 : i+end],
					Span: ast.Span{
						Start: PositionAt(source, i),
						End:   PositionAt(source, i+end),
					},
				})
				i += end
			case '*':
				end := strings.Index(source[i+2:], "*/")
				if end < 0 {
					end = len(source) - i - 4
				}

				comments = append(comments, ast.Comment{
					Kind: ast.CommentBlock,
					Text: source[i+2 : i+2+end],
					Span: ast.Span{
						Start: PositionAt(source, i),
						End:   PositionAt(source, i+4+end),
					},
				})
				i += end + 3
			}
		}
	}

	return comments
}

func skipQuoted(source string, i int) int {
	quote := source[i]

	for j := i + 1; j < len(source); j++ {
		switch source[j] {
		case '\\':
			j++
		case quote:
			return j
		}
	}

	return len(source) - 1
}

// Program assembles a Program from source and a prebuilt root, scanning
// the comments out of the text.
func Program(source string, root *ast.Node) *ast.Program {
	return ast.NewProgram("test.js", source, root, ScanComments(source))
}

// Node creates a node covering the nth occurrence of needle in source.
func Node(kind ast.NodeKind, source, needle string, occurrence int) *ast.Node {
	n := ast.NewNode(kind, SpanOf(source, needle, occurrence))
	n.Text = needle

	return n
}

// Root wraps statements in a program node spanning the whole source.
func Root(source string, stmts ...*ast.Node) *ast.Node {
	root := ast.NewNode(ast.KindProgram, ast.Span{
		Start: PositionAt(source, 0),
		End:   PositionAt(source, len(source)),
	})

	for _, s := range stmts {
		root.AddChild(s)
	}

	return root
}
