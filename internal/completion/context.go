// Package completion implements the Arabic-aware completion provider:
// tokenize, detect scope, collect candidates, filter and score, per
// spec.md §4.5's eight-step algorithm.
package completion

import (
	"github.com/alif-lang/als/internal/completiondb"
	"github.com/alif-lang/als/internal/source"
	"github.com/alif-lang/als/internal/token"
)

// Context mirrors spec.md §3's CompletionContext: everything the scoring
// and filtering steps need, derived once per completion request.
type Context struct {
	ScopeKind           completiondb.ScopeKind
	AvailableVariables  []string
	AvailableFunctions  []string
	AvailableClasses    []string
	CursorLine          uint32
	CursorColumn        uint32
	CurrentWord         string
	PreviousToken       token.Token
	HasPreviousToken    bool
}

// BuildContext derives the CompletionContext for a cursor position from an
// already-tokenized document, per spec.md §4.5 step 3. cursor is a Position
// whose byte Offset the caller has already resolved (e.g. via
// source.Document.PositionAt).
func BuildContext(tokens []token.Token, cursor source.Position) Context {
	ctx := Context{
		CursorLine:   cursor.Line,
		CursorColumn: cursor.Column,
	}

	ctx.CurrentWord = currentWord(tokens, cursor)
	ctx.PreviousToken, ctx.HasPreviousToken = previousToken(tokens, cursor)
	ctx.ScopeKind = detectScope(tokens, cursor)

	variables, functions, classes := observedNames(tokens, ctx.CurrentWord)
	ctx.AvailableVariables = variables
	ctx.AvailableFunctions = functions
	ctx.AvailableClasses = classes

	return ctx
}

// currentWord returns the longest run of identifier-continue runes ending
// at (or containing) the cursor, spec.md §4.5 step 3's "current_word"
// definition. It walks the token stream rather than re-scanning raw text,
// since an Identifier token's Range already delimits exactly that run.
func currentWord(tokens []token.Token, cursor source.Position) string {
	for _, tok := range tokens {
		if tok.Kind != token.Identifier && tok.Kind != token.Keyword &&
			tok.Kind != token.Keyword1 && tok.Kind != token.Keyword2 {
			continue
		}
		if tok.Range.ContainsOrTouchesEnd(cursor) && tok.Range.Start.Offset <= cursor.Offset {
			return tok.Text[:prefixLen(tok.Text, cursor.Offset-tok.Range.Start.Offset)]
		}
	}
	return ""
}

// prefixLen clamps n to the byte length of s, guarding against a cursor
// that lands mid-rune (shouldn't happen given UTF-8 aligned offsets, but
// truncation is cheaper than a panic if it does).
func prefixLen(s string, n uint32) int {
	if int(n) > len(s) {
		return len(s)
	}
	return int(n)
}

// previousToken returns the last token that ends strictly before the
// cursor, skipping EndOfFile, per spec.md §4.5 step 3.
func previousToken(tokens []token.Token, cursor source.Position) (token.Token, bool) {
	var prev token.Token
	found := false
	for _, tok := range tokens {
		if tok.Kind == token.EndOfFile {
			break
		}
		if tok.Range.End.Offset <= cursor.Offset {
			prev = tok
			found = true
			continue
		}
		break
	}
	return prev, found
}

// observedNames partitions the document's own identifiers into variables,
// functions, and classes by looking at what keyword immediately precedes
// each identifier (دالة/صنف), the same heuristic spec.md §4.5 uses for
// "available_functions"/"available_classes" absent a real symbol table.
func observedNames(tokens []token.Token, exclude string) (vars, funcs, classes []string) {
	seen := map[string]bool{}
	for i, tok := range tokens {
		if tok.Kind != token.Identifier || tok.Text == exclude || seen[tok.Text] {
			continue
		}
		seen[tok.Text] = true

		if i > 0 {
			prev := tokens[i-1]
			if prev.Kind == token.Keyword && isFunctionKeyword(prev.Text) {
				funcs = append(funcs, tok.Text)
				continue
			}
			if prev.Kind == token.Keyword && isClassKeyword(prev.Text) {
				classes = append(classes, tok.Text)
				continue
			}
		}
		vars = append(vars, tok.Text)
	}
	return vars, funcs, classes
}

func isFunctionKeyword(text string) bool {
	return text == "دالة"
}

func isClassKeyword(text string) bool {
	return text == "صنف"
}
