// Package ast defines the syntax-tree contract between parser frontends and
// the lint engine. Parsers produce a Program of generic nodes with byte-range
// spans and precomputed line/column positions; the engine never recomputes
// positions.
package ast

import "fmt"

// Position is a single location in a source file.
type Position struct {
	// Line is 1-based.
	Line uint32

	// Col is a 0-based byte column within the line.
	Col uint32

	// ByteOffset is the absolute byte offset from the start of the file.
	ByteOffset uint32
}

// String returns "line:col" with a 1-based column for display.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col+1)
}

// Before reports whether p precedes other in source order.
func (p Position) Before(other Position) bool {
	return p.ByteOffset < other.ByteOffset
}

// Span is a half-open byte range with resolved positions at both ends.
// Invariant: Start.ByteOffset <= End.ByteOffset.
type Span struct {
	Start Position
	End   Position
}

// Contains reports whether the given offset falls inside the span.
func (s Span) Contains(offset uint32) bool {
	return s.Start.ByteOffset <= offset && offset < s.End.ByteOffset
}

// Len returns the byte length of the span.
func (s Span) Len() uint32 {
	return s.End.ByteOffset - s.Start.ByteOffset
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}
