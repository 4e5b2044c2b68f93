package lexer

import "github.com/alif-lang/als/internal/source"

// LexerError records an unrecognized byte sequence encountered while
// lexing (spec.md §4.4: "unknown characters: record a LexerError and skip
// one codepoint"). Errors are collected alongside the token stream, never
// emitted as tokens themselves.
type LexerError struct {
	Message  string
	Position source.Position
}
