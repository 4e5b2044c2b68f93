package token

// keywords holds the Alif control/structural keyword set (spec.md §4.4).
// Exact orthography is part of the wire interface — do not normalize casing
// or diacritics here.
var keywords = map[string]struct{}{
	"ك": {}, "و": {}, "في": {}, "او": {}, "أو": {}, "من": {}, "مع": {},
	"صح": {}, "هل": {}, "اذا": {}, "إذا": {}, "ليس": {}, "مرر": {}, "عدم": {},
	"ولد": {}, "صنف": {}, "خطا": {}, "خطأ": {}, "عام": {}, "احذف": {}, "دالة": {},
	"لاجل": {}, "لأجل": {}, "والا": {}, "وإلا": {}, "توقف": {}, "نطاق": {},
	"ارجع": {}, "اواذا": {}, "أوإذا": {}, "بينما": {}, "انتظر": {}, "استمر": {},
	"مزامنة": {}, "استورد": {}, "حاول": {}, "خلل": {}, "نهاية": {},
}

// keywords1 holds the Alif built-in function names (spec.md §4.4).
var keywords1 = map[string]struct{}{
	"اطبع": {}, "ادخل": {}, "مدى": {},
}

// keywords2 holds special identifiers with dedicated syntactic meaning
// (spec.md §4.4): the constructor hook, the instance reference, and the
// base-class reference.
var keywords2 = map[string]struct{}{
	"_تهيئة_": {}, "هذا": {}, "اصل": {},
}

// LookupKeyword classifies text as Keyword/Keyword1/Keyword2 if it exactly
// matches one of the three static sets, else reports ok=false so the caller
// falls back to Identifier.
func LookupKeyword(text string) (Kind, bool) {
	if _, ok := keywords[text]; ok {
		return Keyword, true
	}
	if _, ok := keywords1[text]; ok {
		return Keyword1, true
	}
	if _, ok := keywords2[text]; ok {
		return Keyword2, true
	}
	return Invalid, false
}

// Keywords returns the control-keyword set as a slice, for the completion
// database to annotate with display strings.
func Keywords() []string { return keysOf(keywords) }

// BuiltinNames returns the built-in function name set as a slice.
func BuiltinNames() []string { return keysOf(keywords1) }

// SpecialIdentifiers returns the special-identifier set as a slice.
func SpecialIdentifiers() []string { return keysOf(keywords2) }

func keysOf(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
