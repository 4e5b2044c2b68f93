package server

import "github.com/alif-lang/als/internal/version"

// completionTriggerCharacters is the fixed set spec.md §6 advertises.
var completionTriggerCharacters = []string{".", " ", "(", "[", "{"}

type completionOptions struct {
	TriggerCharacters []string `json:"triggerCharacters"`
}

type serverCapabilities struct {
	TextDocumentSync   int               `json:"textDocumentSync"`
	CompletionProvider completionOptions `json:"completionProvider"`
	HoverProvider      bool              `json:"hoverProvider"`
	DefinitionProvider bool              `json:"definitionProvider"`
	ReferencesProvider bool              `json:"referencesProvider"`
}

type serverInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type initializeResult struct {
	Capabilities serverCapabilities `json:"capabilities"`
	ServerInfo   serverInfo         `json:"serverInfo"`
}

// fixedInitializeResult is spec.md §6/§8's scenario-1 handshake response,
// identical on every call since this core advertises no configurable
// capabilities.
func fixedInitializeResult() initializeResult {
	return initializeResult{
		Capabilities: serverCapabilities{
			TextDocumentSync:   1,
			CompletionProvider: completionOptions{TriggerCharacters: completionTriggerCharacters},
			HoverProvider:      false,
			DefinitionProvider: false,
			ReferencesProvider: false,
		},
		ServerInfo: serverInfo{Name: version.Name, Version: version.ServerInfoVersion},
	}
}
