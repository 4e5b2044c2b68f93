package completiondb

// snippetItems are templates with placeholder markers of the forms
// "${N:text}" (named) and "$N" (positional), preserved verbatim in
// InsertText per spec.md §4.5 — interpretation of placeholders is the
// client's responsibility, not this server's.
var snippetItems = []Item{
	{
		ArabicName: "اذا", EnglishName: "if-snippet", Kind: KindSnippet, Category: "snippet",
		ArabicDescription: "قالب جملة شرطية",
		InsertText:        "اذا (${1:الشرط}) {\n\t${2:مرر}\n}",
		Label:             "اذا…",
		Priority:          40, Tags: []string{"basic"},
	},
	{
		ArabicName: "اذا-والا", EnglishName: "if-else-snippet", Kind: KindSnippet, Category: "snippet",
		ArabicDescription: "قالب جملة شرطية مع فرع بديل",
		InsertText:        "اذا (${1:الشرط}) {\n\t${2:مرر}\n} والا {\n\t${3:مرر}\n}",
		Label:             "اذا…والا…",
		Priority:          38,
	},
	{
		ArabicName: "لاجل", EnglishName: "for-snippet", Kind: KindSnippet, Category: "snippet",
		ArabicDescription: "قالب حلقة لاجل",
		InsertText:        "لاجل ${1:عنصر} في ${2:مدى(10)} {\n\t${3:مرر}\n}",
		Label:             "لاجل…في…",
		Priority:          40, Tags: []string{"basic"},
	},
	{
		ArabicName: "بينما", EnglishName: "while-snippet", Kind: KindSnippet, Category: "snippet",
		ArabicDescription: "قالب حلقة بينما",
		InsertText:        "بينما (${1:الشرط}) {\n\t${2:مرر}\n}",
		Label:             "بينما…",
		Priority:          38,
	},
	{
		ArabicName: "دالة", EnglishName: "def-snippet", Kind: KindSnippet, Category: "snippet",
		ArabicDescription: "قالب تعريف دالة",
		InsertText:        "دالة ${1:الاسم}(${2:المعاملات}) {\n\t${3:مرر}\n}",
		Label:             "دالة…",
		Priority:          42, Tags: []string{"basic"},
	},
	{
		ArabicName: "صنف", EnglishName: "class-snippet", Kind: KindSnippet, Category: "snippet",
		ArabicDescription: "قالب تعريف صنف مع دالة تهيئة",
		InsertText:        "صنف ${1:الاسم} {\n\tدالة _تهيئة_(هذا${2:, المعاملات}) {\n\t\t${3:مرر}\n\t}\n}",
		Label:             "صنف…",
		Priority:          36, Contexts: []ScopeKind{ScopeGlobal},
	},
	{
		ArabicName: "حاول-خلل", EnglishName: "try-except-snippet", Kind: KindSnippet, Category: "snippet",
		ArabicDescription: "قالب كتلة معالجة أخطاء",
		InsertText:        "حاول {\n\t${1:مرر}\n} خلل ${2:خلل} ك ${3:هـ} {\n\t${4:مرر}\n}",
		Label:             "حاول…خلل…",
		Priority:          30,
	},
}
