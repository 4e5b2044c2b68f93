package completion

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/alif-lang/als/internal/completiondb"
)

var fold = cases.Fold()

// foldKey normalizes s to NFC and case-folds it, so a query typed with a
// different Unicode normalization form or Latin case still matches. Arabic
// script has no case distinction, so folding is a no-op there; it matters
// for the English glosses this catalog also carries.
func foldKey(s string) string {
	return fold.String(norm.NFC.String(s))
}

// matchesPrefix reports whether current_word is a prefix of the item's
// arabic_name, label, or filter_text, per spec.md §4.5 step 5.
func matchesPrefix(it completiondb.Item, word string) bool {
	if word == "" {
		return true
	}
	folded := foldKey(word)
	return strings.HasPrefix(foldKey(it.ArabicName), folded) ||
		strings.HasPrefix(foldKey(it.Label), folded) ||
		strings.HasPrefix(foldKey(it.FilterText), folded)
}

// matchesFuzzy is the fallback fuzzy match, per spec.md §4.5 step 5: a
// case-folded substring test against arabic_name only, used only when no
// candidate matches by prefix (P10).
func matchesFuzzy(it completiondb.Item, word string) bool {
	if word == "" {
		return true
	}
	return strings.Contains(foldKey(it.ArabicName), foldKey(word))
}

// filterByWord implements spec.md §4.5 step 5 in full: try prefix matching
// across all candidates first; only when that yields nothing does the
// fuzzy substring fallback run (P10).
func filterByWord(items []completiondb.Item, word string) []completiondb.Item {
	if word == "" {
		return items
	}

	prefixed := make([]completiondb.Item, 0, len(items))
	for _, it := range items {
		if matchesPrefix(it, word) {
			prefixed = append(prefixed, it)
		}
	}
	if len(prefixed) > 0 {
		return prefixed
	}

	fuzzy := make([]completiondb.Item, 0, len(items))
	for _, it := range items {
		if matchesFuzzy(it, word) {
			fuzzy = append(fuzzy, it)
		}
	}
	return fuzzy
}
