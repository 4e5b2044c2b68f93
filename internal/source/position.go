// Package source holds the position and document types shared by the
// lexer and completion provider.
package source

import "fmt"

// Position is a single point in a document. Line and Column are 1-based;
// Offset is the 0-based UTF-8 byte offset from the start of the document.
type Position struct {
	Line   uint32
	Column uint32
	Offset uint32
}

// String renders the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Range is a half-open span [Start, End) within a single document.
type Range struct {
	Start Position
	End   Position
}

// Contains reports whether pos falls within [Start, End) by byte offset.
func (r Range) Contains(pos Position) bool {
	return pos.Offset >= r.Start.Offset && pos.Offset < r.End.Offset
}

// ContainsOrTouchesEnd is like Contains but also accepts pos == End, which is
// the usual case for a cursor sitting immediately after a token (e.g. the
// identifier the user just finished typing).
func (r Range) ContainsOrTouchesEnd(pos Position) bool {
	return pos.Offset >= r.Start.Offset && pos.Offset <= r.End.Offset
}
