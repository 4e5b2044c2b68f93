package lexer

import "github.com/alif-lang/als/internal/token"

// scanIdentOrKeyword scans the longest identifier-continue run and
// classifies it against the three Alif keyword sets (spec.md §4.4).
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cur.pos()
	startOff := lx.cur.off
	for {
		r, size := lx.cur.peek()
		if size == 0 || !isIdentContinue(r) {
			break
		}
		lx.cur.advance()
	}
	text := lx.cur.src[startOff:lx.cur.off]
	end := lx.cur.pos()

	kind := token.Identifier
	if k, ok := token.LookupKeyword(text); ok {
		kind = k
	}
	return token.Token{Kind: kind, Text: text, Range: rangeOf(start, end)}
}
