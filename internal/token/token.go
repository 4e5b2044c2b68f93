package token

import "github.com/alif-lang/als/internal/source"

// Token is a single lexed unit: its classification, literal text, and the
// range of the document it was lexed from.
type Token struct {
	Kind  Kind
	Text  string
	Range source.Range
}

// IsKeyword reports whether the token is any of the three Alif keyword
// classes (Keyword, Keyword1, Keyword2).
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case Keyword, Keyword1, Keyword2:
		return true
	default:
		return false
	}
}

// EndOffset returns the exclusive byte offset one past the token's last
// byte — the natural "cursor sits right after this token" position.
func (t Token) EndOffset() uint32 {
	return t.Range.End.Offset
}
