package lexer

import "github.com/alif-lang/als/internal/token"

// twoCharOperators lists the two-character operators spec.md §4.4
// recognizes; all other operator characters lex as single-character tokens.
var twoCharOperators = map[[2]byte]struct{}{
	{'=', '='}: {},
	{'!', '='}: {},
	{'<', '='}: {},
	{'>', '='}: {},
}

// scanOperator scans one or two ASCII operator characters.
func (lx *Lexer) scanOperator() token.Token {
	start := lx.cur.pos()
	startOff := lx.cur.off
	b0 := lx.cur.peekByte()
	lx.cur.advance()
	b1 := lx.cur.peekByte()
	if _, ok := twoCharOperators[[2]byte{b0, b1}]; ok {
		lx.cur.advance()
	}
	text := lx.cur.src[startOff:lx.cur.off]
	end := lx.cur.pos()
	return token.Token{Kind: token.Operator, Text: text, Range: rangeOf(start, end)}
}

// scanPunct scans a single punctuation character: parens, brackets, braces,
// comma, semicolon, colon, or a standalone dot (one not starting a number).
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cur.pos()
	startOff := lx.cur.off
	lx.cur.advance()
	text := lx.cur.src[startOff:lx.cur.off]
	end := lx.cur.pos()
	return token.Token{Kind: token.Punctuation, Text: text, Range: rangeOf(start, end)}
}

// scanComment scans from '#' to end-of-line (spec.md §4.4).
func (lx *Lexer) scanComment() token.Token {
	start := lx.cur.pos()
	startOff := lx.cur.off
	for {
		r, size := lx.cur.peek()
		if size == 0 || r == '\n' {
			break
		}
		lx.cur.advance()
	}
	text := lx.cur.src[startOff:lx.cur.off]
	end := lx.cur.pos()
	return token.Token{Kind: token.Comment, Text: text, Range: rangeOf(start, end)}
}
