package completiondb

import (
	"fmt"
	"sync"
)

// Catalog is the process-wide, lazily-initialized completion item store
// (spec.md §3: "The completion-database catalog is process-wide,
// initialized lazily on first query").
type Catalog struct {
	keywords   []Item
	builtins   []Item
	specials   []Item
	snippets   []Item
	all        []Item
}

var (
	once    sync.Once
	catalog *Catalog
)

// Default returns the lazily-built process-wide catalog.
func Default() *Catalog {
	once.Do(func() {
		catalog = build()
	})
	return catalog
}

func build() *Catalog {
	c := &Catalog{
		keywords: normalize(keywordItems, KindKeyword, 50),
		builtins: normalize(builtinItems, KindFunction, 60),
		specials: normalize(specialIdentifierItems, KindVariable, 60),
		snippets: normalize(snippetItems, KindSnippet, 40),
	}
	c.all = make([]Item, 0, len(c.keywords)+len(c.builtins)+len(c.specials)+len(c.snippets))
	c.all = append(c.all, c.keywords...)
	c.all = append(c.all, c.builtins...)
	c.all = append(c.all, c.specials...)
	c.all = append(c.all, c.snippets...)
	return c
}

func normalize(items []Item, defaultKind ItemKind, defaultPriority int) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		if it.Kind == 0 {
			it.Kind = defaultKind
		}
		if it.Priority == 0 {
			it.Priority = defaultPriority
		}
		if it.Label == "" {
			it.Label = it.ArabicName
		}
		if it.InsertText == "" {
			it.InsertText = it.ArabicName
		}
		if it.FilterText == "" {
			it.FilterText = it.ArabicName
		}
		if it.SortText == "" {
			it.SortText = fmt.Sprintf("%03d_%s", 100-it.Priority, it.ArabicName)
		}
		out[i] = it
	}
	return out
}

// All returns every catalog item (keywords, built-ins, special
// identifiers, and snippets).
func (c *Catalog) All() []Item { return c.all }

// Keywords returns the Keyword-set catalog entries.
func (c *Catalog) Keywords() []Item { return c.keywords }

// Builtins returns the Keyword1 built-in-function catalog entries.
func (c *Catalog) Builtins() []Item { return c.builtins }

// SpecialIdentifiers returns the Keyword2 catalog entries.
func (c *Catalog) SpecialIdentifiers() []Item { return c.specials }

// Snippets returns the snippet-template catalog entries.
func (c *Catalog) Snippets() []Item { return c.snippets }

// IdentifierItem builds a low-priority completion item for an identifier
// observed in the document's own token stream (spec.md §4.5 step 4's
// fourth candidate source), distinct from the static catalog.
func IdentifierItem(name string) Item {
	return Item{
		Label:      name,
		ArabicName: name,
		Kind:       KindVariable,
		Category:   "identifier",
		Priority:   20,
		InsertText: name,
		FilterText: name,
		SortText:   fmt.Sprintf("%03d_%s", 100-20, name),
	}
}
