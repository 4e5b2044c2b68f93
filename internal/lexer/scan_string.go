package lexer

import "github.com/alif-lang/als/internal/token"

// fStringMarker is the Arabic letter that, immediately preceding an opening
// quote, marks the literal as an f-string (spec.md §4.4, §9).
const fStringMarker = 'م'

// scanString scans a string or f-string literal opened by quote ('"' or
// '\''). Escape pairs (`\x`) are consumed verbatim without interpretation.
// A plain string always yields one String token. An f-string containing no
// top-level '{' also yields one String token (the f-string marker only
// matters once an embedded expression appears); once a top-level '{' is
// seen, the literal is split into FStringStart/FStringMiddle/FStringEnd
// tokens around the (unparsed, verbatim) brace sections, tracked with a
// nesting counter so inner braces don't end the section early.
func (lx *Lexer) scanString(quote rune) token.Token {
	isF := lx.cur.prevRune() == fStringMarker

	segStart := lx.cur.pos()
	segStartOff := lx.cur.off
	lx.cur.advance() // opening quote

	depth := 0
	sawBrace := false
	var pieces []token.Token

	flush := func(kind token.Kind) {
		text := lx.cur.src[segStartOff:lx.cur.off]
		end := lx.cur.pos()
		pieces = append(pieces, token.Token{Kind: kind, Text: text, Range: rangeOf(segStart, end)})
		segStart = end
		segStartOff = lx.cur.off
	}

	for {
		r, size := lx.cur.peek()
		if size == 0 {
			lx.report("unterminated string literal")
			flush(token.Invalid)
			return lx.emitPieces(pieces)
		}
		switch {
		case r == '\\':
			lx.cur.advance()
			if !lx.cur.eof() {
				lx.cur.advance()
			}
		case isF && r == '{' && depth == 0:
			depth++
			lx.cur.advance()
			sawBrace = true
			if len(pieces) == 0 {
				flush(token.FStringStart)
			} else {
				flush(token.FStringMiddle)
			}
		case isF && r == '{':
			depth++
			lx.cur.advance()
		case isF && r == '}' && depth > 0:
			depth--
			lx.cur.advance()
		case r == quote && depth == 0:
			lx.cur.advance()
			if sawBrace {
				flush(token.FStringEnd)
			} else {
				flush(token.String)
			}
			return lx.emitPieces(pieces)
		default:
			lx.cur.advance()
		}
	}
}

// emitPieces returns the first scanned piece (the common case: a plain
// string, or an f-string with no embedded expression, produces exactly one)
// and queues any remaining pieces so Next() drains them in order before
// resuming normal scanning.
func (lx *Lexer) emitPieces(pieces []token.Token) token.Token {
	if len(pieces) == 0 {
		return token.Token{Kind: token.Invalid}
	}
	if len(pieces) > 1 {
		lx.pending = append(lx.pending, pieces[1:]...)
	}
	return pieces[0]
}
