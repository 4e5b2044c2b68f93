package lexer_test

import (
	"testing"

	"github.com/alif-lang/als/internal/lexer"
	"github.com/alif-lang/als/internal/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestTokenizeKeywordBijectivity(t *testing.T) {
	for _, kw := range token.Keywords() {
		toks, errs := lexer.Tokenize(kw)
		if len(errs) != 0 {
			t.Fatalf("%q: unexpected errors: %v", kw, errs)
		}
		if len(toks) != 2 {
			t.Fatalf("%q: expected [Keyword, EOF], got %v", kw, kinds(toks))
		}
		if toks[0].Kind != token.Keyword {
			t.Errorf("%q: expected Keyword, got %s", kw, toks[0].Kind)
		}
		if toks[1].Kind != token.EndOfFile {
			t.Errorf("%q: expected EOF, got %s", kw, toks[1].Kind)
		}
	}
}

func TestTokenizeBuiltinBijectivity(t *testing.T) {
	for _, kw := range token.BuiltinNames() {
		toks, _ := lexer.Tokenize(kw)
		if len(toks) != 2 || toks[0].Kind != token.Keyword1 {
			t.Errorf("%q: expected [Keyword1, EOF], got %v", kw, kinds(toks))
		}
	}
}

func TestTokenizeSpecialIdentBijectivity(t *testing.T) {
	for _, kw := range token.SpecialIdentifiers() {
		toks, _ := lexer.Tokenize(kw)
		if len(toks) != 2 || toks[0].Kind != token.Keyword2 {
			t.Errorf("%q: expected [Keyword2, EOF], got %v", kw, kinds(toks))
		}
	}
}

func TestTokenizeIdentifierVsKeywordDisjoint(t *testing.T) {
	toks, errs := lexer.Tokenize("متغير")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(toks) != 2 || toks[0].Kind != token.Identifier {
		t.Fatalf("expected Identifier, got %v", kinds(toks))
	}
}

func TestTokenizeNumberWithDot(t *testing.T) {
	toks, _ := lexer.Tokenize("3.14")
	if toks[0].Kind != token.Number || toks[0].Text != "3.14" {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestTokenizeArabicIndicDigits(t *testing.T) {
	toks, _ := lexer.Tokenize("٣.١٤")
	if toks[0].Kind != token.Number || toks[0].Text != "٣.١٤" {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestTokenizeStringEscape(t *testing.T) {
	toks, _ := lexer.Tokenize(`"a\"b"`)
	if toks[0].Kind != token.String || toks[0].Text != `"a\"b"` {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	toks, errs := lexer.Tokenize(`"abc`)
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}
	if toks[0].Kind != token.Invalid {
		t.Fatalf("expected Invalid token, got %s", toks[0].Kind)
	}
}

func TestTokenizeComment(t *testing.T) {
	toks, _ := lexer.Tokenize("دالة # تعليق\nنهاية")
	if toks[1].Kind != token.Comment || toks[1].Text != "# تعليق" {
		t.Fatalf("got %+v", toks[1])
	}
}

func TestTokenizeFStringSimple(t *testing.T) {
	// no embedded expression: single String token, despite the م prefix.
	toks, _ := lexer.Tokenize(`م"hello"`)
	if toks[0].Kind != token.Identifier {
		t.Fatalf("expected leading م identifier, got %s", toks[0].Kind)
	}
	if toks[1].Kind != token.String {
		t.Fatalf("expected String, got %s", toks[1].Kind)
	}
}

func TestTokenizeFStringWithExpression(t *testing.T) {
	toks, _ := lexer.Tokenize(`م"قيمة {س} هنا"`)
	// toks[0] = م identifier, then FStringStart/Middle-or-End around {س}
	var fkinds []token.Kind
	for _, tk := range toks {
		if tk.Kind == token.FStringStart || tk.Kind == token.FStringMiddle || tk.Kind == token.FStringEnd {
			fkinds = append(fkinds, tk.Kind)
		}
	}
	if len(fkinds) != 2 || fkinds[0] != token.FStringStart || fkinds[1] != token.FStringEnd {
		t.Fatalf("expected [FStringStart, FStringEnd], got %v", fkinds)
	}
}

func TestTokenizeTwoCharOperators(t *testing.T) {
	toks, _ := lexer.Tokenize("a == b != c <= d >= e")
	var ops []string
	for _, tk := range toks {
		if tk.Kind == token.Operator {
			ops = append(ops, tk.Text)
		}
	}
	want := []string{"==", "!=", "<=", ">="}
	if len(ops) != len(want) {
		t.Fatalf("got %v", ops)
	}
	for i, w := range want {
		if ops[i] != w {
			t.Errorf("op[%d] = %q, want %q", i, ops[i], w)
		}
	}
}

func TestTokenizeUnknownCharacterSkipped(t *testing.T) {
	toks, errs := lexer.Tokenize("a $ b")
	if len(errs) != 1 {
		t.Fatalf("expected one lexer error, got %v", errs)
	}
	var idents []string
	for _, tk := range toks {
		if tk.Kind == token.Identifier {
			idents = append(idents, tk.Text)
		}
	}
	if len(idents) != 2 || idents[0] != "a" || idents[1] != "b" {
		t.Fatalf("got %v", idents)
	}
}

func TestTokenizeWhitespaceSkipped(t *testing.T) {
	toks, _ := lexer.Tokenize("  \t\n  ")
	if len(toks) != 1 || toks[0].Kind != token.EndOfFile {
		t.Fatalf("expected only EOF, got %v", kinds(toks))
	}
}

func TestTokenizePositionTracking(t *testing.T) {
	toks, _ := lexer.Tokenize("دالة\nهل")
	if toks[0].Range.Start.Line != 1 || toks[0].Range.Start.Column != 1 {
		t.Fatalf("got %+v", toks[0].Range.Start)
	}
	if toks[1].Range.Start.Line != 2 || toks[1].Range.Start.Column != 1 {
		t.Fatalf("got %+v", toks[1].Range.Start)
	}
}

func TestTokenizeAlwaysEndsInEOF(t *testing.T) {
	toks, _ := lexer.Tokenize("دالة رئيسي ()")
	if toks[len(toks)-1].Kind != token.EndOfFile {
		t.Fatalf("last token is not EOF: %v", kinds(toks))
	}
	for _, tk := range toks[:len(toks)-1] {
		if tk.Kind == token.EndOfFile {
			t.Fatalf("EOF appeared before the end: %v", kinds(toks))
		}
	}
}
