package completion_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alif-lang/als/internal/completion"
	"github.com/alif-lang/als/internal/lexer"
	"github.com/alif-lang/als/internal/source"
	"github.com/alif-lang/als/internal/token"
)

func positionForOffset(text string, idx int) source.Position {
	line, col := 1, 1
	off := 0
	for i, r := range text {
		if i == idx {
			break
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
		off += len(string(r))
	}
	return source.Position{Line: uint32(line), Column: uint32(col), Offset: uint32(off)}
}

// prepare strips the "|" cursor marker from src and returns the clean text
// plus the resolved cursor position.
func prepare(src string) (string, source.Position) {
	idx := strings.IndexByte(src, '|')
	if idx < 0 {
		panic("test source missing | cursor marker")
	}
	text := src[:idx] + src[idx+1:]
	return text, positionForOffset(text, idx)
}

func TestCompletionOverArabicPrintPrefix(t *testing.T) {
	text, cursor := prepare(`اط|`)
	result := completion.Provide(text, cursor, completion.MaxItems)
	require.NotEmpty(t, result.Items)
	assert.Equal(t, "اطبع", result.Items[0].ArabicName)
	assert.Equal(t, 3, result.Items[0].Kind)
}

func TestCompletionSuppressedInsideString(t *testing.T) {
	text, cursor := prepare(`اطبع("مرح|با")`)
	result := completion.Provide(text, cursor, completion.MaxItems)
	assert.Empty(t, result.Items)
}

func TestCompletionSuppressedInsideComment(t *testing.T) {
	text, cursor := prepare("# هذا تعليق اط|بع\n")
	result := completion.Provide(text, cursor, completion.MaxItems)
	assert.Empty(t, result.Items)
}

func TestCompletionNotSuppressedRightAfterString(t *testing.T) {
	text, cursor := prepare(`اطبع("مرحبا")|`)
	result := completion.Provide(text, cursor, completion.MaxItems)
	assert.NotEmpty(t, result.Items)
}

func TestCompletionFallsBackToFuzzyWhenNoPrefixMatches(t *testing.T) {
	text, cursor := prepare(`طب|`)
	result := completion.Provide(text, cursor, completion.MaxItems)
	require.NotEmpty(t, result.Items)
	found := false
	for _, it := range result.Items {
		if it.ArabicName == "اطبع" {
			found = true
		}
	}
	assert.True(t, found, "fuzzy fallback should surface اطبع for the substring طب")
}

func TestCompletionTruncatesToFifty(t *testing.T) {
	text, cursor := prepare(`|`)
	result := completion.Provide(text, cursor, completion.MaxItems)
	assert.LessOrEqual(t, len(result.Items), completion.MaxItems)
}

func TestCompletionInsideFunctionBodyRanksScopedItemsHigher(t *testing.T) {
	text, cursor := prepare("دالة س() {\n\tار|\n}")
	result := completion.Provide(text, cursor, completion.MaxItems)
	require.NotEmpty(t, result.Items)
	assert.Equal(t, "ارجع", result.Items[0].ArabicName)
}

func TestCompletionCollectsDocumentIdentifiers(t *testing.T) {
	text, cursor := prepare("متغير_محلي = 1\nمتغير|")
	result := completion.Provide(text, cursor, completion.MaxItems)
	found := false
	for _, it := range result.Items {
		if it.Label == "متغير_محلي" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCompletionExcludesCurrentWordFromIdentifierCandidates(t *testing.T) {
	text, cursor := prepare("س = 1\nس|")
	result := completion.Provide(text, cursor, completion.MaxItems)
	count := 0
	for _, it := range result.Items {
		if it.Label == "س" && it.Category == "identifier" {
			count++
		}
	}
	assert.Equal(t, 0, count, "the identifier being typed should not appear as its own candidate")
}

func TestTokenizeStillProducesEndOfFile(t *testing.T) {
	tokens, errs := lexer.Tokenize("اطبع(1)")
	require.Empty(t, errs)
	require.NotEmpty(t, tokens)
	assert.Equal(t, token.EndOfFile, tokens[len(tokens)-1].Kind)
}
