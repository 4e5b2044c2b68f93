package completion

import (
	"strings"

	"github.com/alif-lang/als/internal/completiondb"
)

// score computes the ranking value from spec.md §4.5 step 6:
// item.priority + context_bonus + prefix_bonus + tag_bonus.
func score(it completiondb.Item, ctx Context) int {
	total := it.Priority
	total += contextBonus(it, ctx.ScopeKind)
	total += prefixBonus(it, ctx.CurrentWord)
	total += tagBonus(it)
	return total
}

// contextBonus adds 20 when the item is scoped to the current context (an
// item with no Contexts applies everywhere, per Item.AppliesTo).
func contextBonus(it completiondb.Item, scope completiondb.ScopeKind) int {
	if it.AppliesTo(scope) {
		return 20
	}
	return 0
}

// prefixBonus adds 30 for a starts-with match and 10 for a contains match,
// per spec.md §4.5 step 6.
func prefixBonus(it completiondb.Item, word string) int {
	if word == "" {
		return 0
	}
	folded := foldKey(word)
	if strings.HasPrefix(foldKey(it.ArabicName), folded) || strings.HasPrefix(foldKey(it.Label), folded) {
		return 30
	}
	if strings.Contains(foldKey(it.ArabicName), folded) || strings.Contains(foldKey(it.Label), folded) {
		return 10
	}
	return 0
}

// tagBonus adds 15 when the item is tagged "basic" or "beginner".
func tagBonus(it completiondb.Item) int {
	if it.HasTag("basic") || it.HasTag("beginner") {
		return 15
	}
	return 0
}
