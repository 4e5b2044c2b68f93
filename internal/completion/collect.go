package completion

import (
	"github.com/alif-lang/als/internal/completiondb"
)

// collectCandidates gathers spec.md §4.5 step 4's four candidate sources:
// the static keyword/builtin/snippet catalog, plus identifiers observed in
// the document (excluding the word currently being typed, which is not a
// candidate for itself).
func collectCandidates(catalog *completiondb.Catalog, ctx Context) []completiondb.Item {
	items := make([]completiondb.Item, 0,
		len(catalog.All())+len(ctx.AvailableVariables)+len(ctx.AvailableFunctions)+len(ctx.AvailableClasses))

	items = append(items, catalog.All()...)

	for _, name := range ctx.AvailableVariables {
		items = append(items, completiondb.IdentifierItem(name))
	}
	for _, name := range ctx.AvailableFunctions {
		it := completiondb.IdentifierItem(name)
		it.Kind = completiondb.KindFunction
		it.Category = "identifier"
		items = append(items, it)
	}
	for _, name := range ctx.AvailableClasses {
		it := completiondb.IdentifierItem(name)
		it.Kind = completiondb.KindClass
		it.Category = "identifier"
		items = append(items, it)
	}

	return items
}
