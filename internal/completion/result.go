package completion

import "github.com/alif-lang/als/internal/completiondb"

// ParameterResult is the wire shape of completiondb.Parameter, per spec.md
// §6's completion result shape.
type ParameterResult struct {
	Name              string `json:"name"`
	Type              string `json:"type"`
	ArabicDescription string `json:"arabicDescription"`
	IsOptional        bool   `json:"isOptional"`
	DefaultValue      string `json:"defaultValue,omitempty"`
}

// ItemResult is the wire shape of one completion item, per spec.md §6.
type ItemResult struct {
	Label                     string            `json:"label"`
	Kind                      int               `json:"kind"`
	InsertText                string            `json:"insertText"`
	FilterText                string            `json:"filterText"`
	SortText                  string            `json:"sortText"`
	ArabicName                string            `json:"arabicName"`
	EnglishName               string            `json:"englishName"`
	ArabicDescription         string            `json:"arabicDescription"`
	ArabicDetailedDesc        string            `json:"arabicDetailedDesc"`
	UsageExample              string            `json:"usageExample"`
	ArabicExample             string            `json:"arabicExample"`
	Parameters                []ParameterResult `json:"parameters"`
	ReturnType                string            `json:"returnType"`
	ArabicReturnDesc          string            `json:"arabicReturnDesc"`
	Priority                  int               `json:"priority"`
	Contexts                  []string          `json:"contexts"`
	Tags                      []string          `json:"tags"`
	Category                  string            `json:"category"`
}

// Result is the top-level textDocument/completion response, per spec.md §6.
type Result struct {
	IsIncomplete bool         `json:"isIncomplete"`
	Items        []ItemResult `json:"items"`
}

func toResult(items []completiondb.Item) Result {
	out := make([]ItemResult, len(items))
	for i, it := range items {
		out[i] = toItemResult(it)
	}
	return Result{IsIncomplete: false, Items: out}
}

func toItemResult(it completiondb.Item) ItemResult {
	params := make([]ParameterResult, len(it.Parameters))
	for i, p := range it.Parameters {
		params[i] = ParameterResult{
			Name:              p.Name,
			Type:              p.Type,
			ArabicDescription: p.ArabicDescription,
			IsOptional:        p.IsOptional,
			DefaultValue:      p.DefaultValue,
		}
	}

	contexts := make([]string, len(it.Contexts))
	for i, c := range it.Contexts {
		contexts[i] = scopeName(c)
	}

	return ItemResult{
		Label:              it.Label,
		Kind:               int(it.Kind),
		InsertText:         it.InsertText,
		FilterText:         it.FilterText,
		SortText:           it.SortText,
		ArabicName:         it.ArabicName,
		EnglishName:        it.EnglishName,
		ArabicDescription:  it.ArabicDescription,
		ArabicDetailedDesc: it.ArabicDetailedDescription,
		UsageExample:       it.UsageExample,
		ArabicExample:      it.ArabicExample,
		Parameters:         params,
		ReturnType:         it.ReturnType,
		ArabicReturnDesc:   it.ArabicReturnDesc,
		Priority:           it.Priority,
		Contexts:           contexts,
		Tags:               it.Tags,
		Category:           it.Category,
	}
}

func scopeName(s completiondb.ScopeKind) string {
	switch s {
	case completiondb.ScopeGlobal:
		return "global"
	case completiondb.ScopeFunctionBody:
		return "function-body"
	case completiondb.ScopeClassBody:
		return "class-body"
	case completiondb.ScopeIfCondition:
		return "if-condition"
	case completiondb.ScopeLoopBody:
		return "loop-body"
	case completiondb.ScopeFunctionCall:
		return "function-call"
	case completiondb.ScopeAssignment:
		return "assignment"
	case completiondb.ScopeImport:
		return "import"
	default:
		return "unknown"
	}
}
