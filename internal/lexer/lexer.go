// Package lexer tokenizes Alif source text into the token stream described
// by spec.md §4.4: UTF-8-aware, Arabic-keyword-aware, with inline
// line/column tracking and a side channel of lexer errors.
package lexer

import (
	"github.com/alif-lang/als/internal/source"
	"github.com/alif-lang/als/internal/token"
)

// Lexer scans one document's text into a stream of tokens, terminated by
// exactly one EndOfFile token. Construct with New and pull tokens with Next;
// most callers want the Tokenize convenience function instead.
type Lexer struct {
	cur     *cursor
	errs    []LexerError
	pending []token.Token // queued FStringMiddle/End pieces awaiting drain
}

// New constructs a Lexer over the given source text.
func New(text string) *Lexer {
	return &Lexer{cur: newCursor(text)}
}

// Errors returns the lexer errors collected so far.
func (lx *Lexer) Errors() []LexerError { return lx.errs }

func (lx *Lexer) report(msg string) {
	lx.errs = append(lx.errs, LexerError{Message: msg, Position: lx.cur.pos()})
}

// Next returns the next significant token. Whitespace is consumed silently
// and never returned. After EOF, Next keeps returning an EndOfFile token.
func (lx *Lexer) Next() token.Token {
	if len(lx.pending) > 0 {
		tok := lx.pending[0]
		lx.pending = lx.pending[1:]
		return tok
	}

	lx.skipWhitespace()

	start := lx.cur.pos()
	if lx.cur.eof() {
		return token.Token{Kind: token.EndOfFile, Text: "", Range: rangeOf(start, start)}
	}

	r, size := lx.cur.peek()
	if size == 0 {
		return token.Token{Kind: token.EndOfFile, Text: "", Range: rangeOf(start, start)}
	}

	switch {
	case r == '#':
		return lx.scanComment()
	case r == '"' || r == '\'':
		return lx.scanString(r)
	case isDigit(r):
		return lx.scanNumber()
	case r == '.' && isDigit(lx.peekAfterDot()):
		return lx.scanNumber()
	case isIdentStart(r):
		return lx.scanIdentOrKeyword()
	case isOperatorChar(r):
		return lx.scanOperator()
	case isPunct(r):
		return lx.scanPunct()
	default:
		lx.report("unexpected character " + quoteRune(r))
		lx.cur.advance()
		return lx.Next()
	}
}

func (lx *Lexer) peekAfterDot() rune {
	// cursor is at '.'; decode the rune following it without consuming.
	save := *lx.cur
	lx.cur.advance()
	r, _ := lx.cur.peek()
	*lx.cur = save
	return r
}

func (lx *Lexer) skipWhitespace() {
	for {
		r, size := lx.cur.peek()
		if size == 0 {
			return
		}
		switch r {
		case ' ', '\t', '\r', '\n':
			lx.cur.advance()
		default:
			return
		}
	}
}

func rangeOf(start, end source.Position) source.Range {
	return source.Range{Start: start, End: end}
}

func quoteRune(r rune) string {
	return "'" + string(r) + "'"
}

// isPunct reports whether r is one of the fixed punctuation characters that
// are not also operator characters (parens, braces, commas, etc).
func isPunct(r rune) bool {
	switch r {
	case '(', ')', '[', ']', '{', '}', ',', ';', ':', '.':
		return true
	default:
		return false
	}
}
