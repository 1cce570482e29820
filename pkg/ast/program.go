package ast

import "strings"

// CommentKind distinguishes `// ...` from `/* ... */` comments.
type CommentKind int

const (
	CommentLine CommentKind = iota
	CommentBlock
)

// Comment is a source comment with its delimiters stripped.
type Comment struct {
	Kind CommentKind

	// Text is the comment content without `//` or `/* */`, not trimmed.
	Text string

	Span Span
}

// Program is one parsed source file: the AST root, every comment in source
// order, and the raw source for report rendering.
type Program struct {
	Filename string
	Source   string
	Root     *Node
	Comments []Comment

	lineIndex []int
}

// NewProgram builds a Program and its line index.
func NewProgram(filename, source string, root *Node, comments []Comment) *Program {
	p := &Program{
		Filename: filename,
		Source:   source,
		Root:     root,
		Comments: comments,
	}

	p.lineIndex = append(p.lineIndex, 0)
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			p.lineIndex = append(p.lineIndex, i+1)
		}
	}

	return p
}

// Line returns the text of the 1-based line without its trailing newline.
// Out-of-range lines yield an empty string.
func (p *Program) Line(line uint32) string {
	if line == 0 || int(line) > len(p.lineIndex) {
		return ""
	}

	start := p.lineIndex[line-1]

	end := len(p.Source)
	if int(line) < len(p.lineIndex) {
		end = p.lineIndex[line] - 1
	}

	return strings.TrimSuffix(p.Source[start:end], "\r")
}

// LineCount returns the number of lines in the source.
func (p *Program) LineCount() int {
	return len(p.lineIndex)
}

// FirstStatementStart returns the byte offset of the first top-level
// statement or declaration, and false when the file has none.
func (p *Program) FirstStatementStart() (uint32, bool) {
	if p.Root == nil {
		return 0, false
	}

	for _, c := range p.Root.Children {
		return c.Span.Start.ByteOffset, true
	}

	return 0, false
}
