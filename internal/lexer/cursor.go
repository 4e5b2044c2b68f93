package lexer

import (
	"unicode/utf8"

	"fortio.org/safecast"

	"github.com/alif-lang/als/internal/source"
)

// cursor walks a document's UTF-8 bytes while tracking 1-based line/column
// and 0-based byte offset, per spec.md §4.4's position-tracking rule: update
// line on LF, otherwise advance column. Unlike the teacher's byte-offset-only
// Cursor (which resolves line/col later via a binary search over a
// precomputed line index), the Alif lexer needs per-token positions inline,
// so line/col are carried on the cursor itself.
type cursor struct {
	src  string
	off  uint32
	line uint32
	col  uint32
}

func newCursor(text string) *cursor {
	return &cursor{src: text, off: 0, line: 1, col: 1}
}

func (c *cursor) eof() bool {
	return int(c.off) >= len(c.src)
}

// peek returns the rune at the cursor without consuming it, and its width in
// bytes. Returns (utf8.RuneError, 0) at EOF.
func (c *cursor) peek() (rune, int) {
	if c.eof() {
		return utf8.RuneError, 0
	}
	r, size := utf8.DecodeRuneInString(c.src[c.off:])
	return r, size
}

// peekByte returns the raw byte at the cursor, or 0 at EOF. Used for the
// fast ASCII-operator path where decoding a full rune is unnecessary.
func (c *cursor) peekByte() byte {
	if c.eof() {
		return 0
	}
	return c.src[c.off]
}

// peekByteAt returns the raw byte at off+n, or 0 if out of range.
func (c *cursor) peekByteAt(n int) byte {
	idx := int(c.off) + n
	if idx < 0 || idx >= len(c.src) {
		return 0
	}
	return c.src[idx]
}

// prevRune decodes the rune immediately before the cursor, or utf8.RuneError
// if the cursor is at the start of the document. Used to detect the م
// prefix that marks an f-string (spec.md §4.4).
func (c *cursor) prevRune() rune {
	if c.off == 0 {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeLastRuneInString(c.src[:c.off])
	return r
}

func (c *cursor) pos() source.Position {
	return source.Position{Line: c.line, Column: c.col, Offset: c.off}
}

// advance consumes one rune, updating line/column per spec.md §4.4.
func (c *cursor) advance() rune {
	r, size := c.peek()
	if size == 0 {
		return utf8.RuneError
	}
	n, err := safecast.Conv[uint32](size)
	if err != nil {
		panic(err)
	}
	c.off += n
	if r == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	return r
}

// skipByte consumes one raw byte without rune decoding, advancing the line
// on '\n' and the column otherwise. Returns 0 at EOF.
func (c *cursor) skipByte() byte {
	if c.eof() {
		return 0
	}
	b := c.src[c.off]
	c.off++
	if b == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	return b
}
