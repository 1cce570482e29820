package rules

import (
	"github.com/ecmalint/ecmalint/internal/rule"
	"github.com/ecmalint/ecmalint/pkg/ast"
)

const noSparseArraysCode = "no-sparse-arrays"

// NoSparseArrays bans array literals with holes, such as `[1,, 2]`. The
// grammar produces no node for a hole, so the check scans the literal's
// source text for a comma that follows the opening bracket or another
// comma with no element in between. A single trailing comma is not a hole.
type NoSparseArrays struct{}

func (NoSparseArrays) Code() string     { return noSparseArraysCode }
func (NoSparseArrays) Tags() []rule.Tag { return recommended() }

func (NoSparseArrays) Handlers() rule.Handlers {
	return rule.Handlers{
		ast.KindArray: func(ctx *rule.Context, node *ast.Node) {
			src := ctx.Program().Source
			start, end := node.Span.Start.ByteOffset, node.Span.End.ByteOffset

			if int(end) > len(src) || start >= end {
				return
			}

			if hasArrayHole(src[start:end]) {
				ctx.AddDiagnosticWithHint(
					node.Span,
					noSparseArraysCode,
					"Sparse arrays are not allowed",
					"Remove the hole or fill it with `undefined`",
				)
			}
		},
	}
}

// hasArrayHole scans an array literal for an element-less comma at the
// literal's own nesting depth, skipping strings, templates, comments, and
// nested brackets.
func hasArrayHole(src string) bool {
	depth := 0
	elementSeen := false

	for i := 0; i < len(src); i++ {
		c := src[i]

		switch c {
		case '\'', '"', '`':
			i = skipString(src, i)
			elementSeen = true
		case '/':
			if j := skipComment(src, i); j > i {
				i = j

				continue
			}

			elementSeen = true
		case '[', '(', '{':
			if depth > 0 {
				elementSeen = true
			}

			depth++
		case ']', ')', '}':
			depth--
		case ',':
			if depth == 1 {
				if !elementSeen {
					return true
				}

				elementSeen = false
			}
		case ' ', '\t', '\n', '\r':
		default:
			elementSeen = true
		}
	}

	return false
}

// skipString returns the index of the closing quote matching src[i],
// honoring backslash escapes. Template substitutions are left to the outer
// scan once the template closes.
func skipString(src string, i int) int {
	quote := src[i]

	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '\\':
			j++
		case quote:
			return j
		}
	}

	return len(src) - 1
}

// skipComment returns the index of the last byte of a comment starting at
// i, or i when src[i] does not open one.
func skipComment(src string, i int) int {
	if i+1 >= len(src) {
		return i
	}

	switch src[i+1] {
	case '/':
		for j := i + 2; j < len(src); j++ {
			if src[j] == '\n' {
				return j
			}
		}

		return len(src) - 1
	case '*':
		for j := i + 2; j+1 < len(src); j++ {
			if src[j] == '*' && src[j+1] == '/' {
				return j + 1
			}
		}

		return len(src) - 1
	}

	return i
}
