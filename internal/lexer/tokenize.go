package lexer

import "github.com/alif-lang/als/internal/token"

// Tokenize lexes text in full and returns the token stream (always ending in
// exactly one EndOfFile token) together with any lexer errors collected
// along the way. This is the entry point used by the completion provider
// and the `als tokenize` debug command.
func Tokenize(text string) ([]token.Token, []LexerError) {
	lx := New(text)
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EndOfFile {
			break
		}
	}
	return tokens, lx.Errors()
}
