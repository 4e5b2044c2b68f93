package completion

import (
	"sort"

	"github.com/alif-lang/als/internal/completiondb"
	"github.com/alif-lang/als/internal/lexer"
	"github.com/alif-lang/als/internal/source"
	"github.com/alif-lang/als/internal/token"
)

// MaxItems is the truncation point spec.md §4.5 step 8 fixes at 50.
const MaxItems = 50

// Provide runs the full eight-step algorithm from spec.md §4.5 over a
// document's text at a cursor position and returns the wire result.
// maxItems truncates the ranked list (step 8); callers pass MaxItems for
// the spec.md default or a configured override.
func Provide(text string, cursor source.Position, maxItems int) Result {
	tokens, _ := lexer.Tokenize(text)

	if suppressedAt(tokens, cursor) {
		return Result{IsIncomplete: false, Items: []ItemResult{}}
	}

	ctx := BuildContext(tokens, cursor)
	candidates := collectCandidates(completiondb.Default(), ctx)
	filtered := filterByWord(candidates, ctx.CurrentWord)
	ranked := rank(filtered, ctx)

	if maxItems <= 0 {
		maxItems = MaxItems
	}
	if len(ranked) > maxItems {
		ranked = ranked[:maxItems]
	}

	return toResult(ranked)
}

// suppressedAt is spec.md §4.5 step 2: no completions when the cursor sits
// strictly inside a comment or string token (P9). f-string pieces count as
// string content for this purpose.
func suppressedAt(tokens []token.Token, cursor source.Position) bool {
	for _, tok := range tokens {
		if !tok.Range.Contains(cursor) {
			continue
		}
		switch tok.Kind {
		case token.Comment, token.String, token.FStringStart, token.FStringMiddle, token.FStringEnd:
			return true
		}
		return false
	}
	return false
}

type scoredItem struct {
	item  completiondb.Item
	score int
}

// rank sorts by score descending then by declared priority descending, per
// spec.md §4.5 step 7.
func rank(items []completiondb.Item, ctx Context) []completiondb.Item {
	scored := make([]scoredItem, len(items))
	for i, it := range items {
		scored[i] = scoredItem{item: it, score: score(it, ctx)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].item.Priority > scored[j].item.Priority
	})

	out := make([]completiondb.Item, len(scored))
	for i, s := range scored {
		out[i] = s.item
	}
	return out
}
