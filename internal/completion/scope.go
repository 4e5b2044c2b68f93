package completion

import (
	"github.com/alif-lang/als/internal/completiondb"
	"github.com/alif-lang/als/internal/source"
	"github.com/alif-lang/als/internal/token"
)

// scopeFrame is one entry of the open-bracket stack detectScope walks.
type scopeFrame struct {
	open  string // "{" or "("
	scope completiondb.ScopeKind
}

// detectScope walks the token stream up to the cursor tracking a stack of
// open braces/parens, per spec.md §4.5's scope-detection heuristic: this is
// a token-balance walk, not a parser, so it can be fooled by unbalanced or
// syntactically invalid source — that is accepted per spec.md's own framing
// of the heuristic.
func detectScope(tokens []token.Token, cursor source.Position) completiondb.ScopeKind {
	var stack []scopeFrame
	lastKeyword := ""

	for i, tok := range tokens {
		if tok.Kind == token.EndOfFile || tok.Range.Start.Offset >= cursor.Offset {
			break
		}

		switch {
		case tok.Kind == token.Keyword:
			lastKeyword = tok.Text

		case isBraceOpen(tok):
			scope := completiondb.ScopeGlobal
			if len(stack) > 0 {
				scope = stack[len(stack)-1].scope
			}
			switch lastKeyword {
			case "دالة":
				scope = completiondb.ScopeFunctionBody
			case "صنف":
				scope = completiondb.ScopeClassBody
			case "لاجل", "لأجل", "بينما":
				scope = completiondb.ScopeLoopBody
			}
			stack = append(stack, scopeFrame{open: "{", scope: scope})
			lastKeyword = ""

		case isBraceClose(tok):
			stack = popMatching(stack, "{")

		case isParenOpen(tok):
			scope := completiondb.ScopeGlobal
			if len(stack) > 0 {
				scope = stack[len(stack)-1].scope
			}
			switch {
			case isConditionKeyword(lastKeyword):
				scope = completiondb.ScopeIfCondition
			case i > 0 && tokens[i-1].Kind == token.Identifier:
				scope = completiondb.ScopeFunctionCall
			}
			stack = append(stack, scopeFrame{open: "(", scope: scope})
			lastKeyword = ""

		case isParenClose(tok):
			stack = popMatching(stack, "(")

		case tok.Kind != token.Whitespace && tok.Kind != token.Comment:
			lastKeyword = ""
		}
	}

	if len(stack) > 0 {
		return stack[len(stack)-1].scope
	}

	if prev, ok := previousToken(tokens, cursor); ok && prev.Kind == token.Operator && prev.Text == "=" {
		return completiondb.ScopeAssignment
	}

	return completiondb.ScopeGlobal
}

// popMatching pops the top frame if it matches open; a mismatched close
// (unbalanced source) is left alone rather than corrupting the stack.
func popMatching(stack []scopeFrame, open string) []scopeFrame {
	if len(stack) == 0 || stack[len(stack)-1].open != open {
		return stack
	}
	return stack[:len(stack)-1]
}

func isConditionKeyword(kw string) bool {
	switch kw {
	case "اذا", "إذا", "بينما":
		return true
	default:
		return false
	}
}

func isBraceOpen(tok token.Token) bool {
	return tok.Kind == token.Punctuation && tok.Text == "{"
}

func isBraceClose(tok token.Token) bool {
	return tok.Kind == token.Punctuation && tok.Text == "}"
}

func isParenOpen(tok token.Token) bool {
	return tok.Kind == token.Punctuation && tok.Text == "("
}

func isParenClose(tok token.Token) bool {
	return tok.Kind == token.Punctuation && tok.Text == ")"
}
