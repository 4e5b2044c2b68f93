package server

import (
	"encoding/json"

	"github.com/alif-lang/als/internal/completion"
	"github.com/alif-lang/als/internal/dispatcher"
	"github.com/alif-lang/als/internal/logging"
	"github.com/alif-lang/als/internal/source"
	"github.com/alif-lang/als/internal/transport"
)

// registerHandlers wires spec.md §6's full method table onto the
// dispatcher registry. "exit" is intentionally absent here: Run intercepts
// it directly off the read loop, matching the teacher's handleMessage
// special-casing of exit rather than routing it through a handler.
func (s *Server) registerHandlers() {
	s.dispatcher.HandleRequest("initialize", s.handleInitialize)
	s.dispatcher.HandleRequest("shutdown", s.handleShutdown)
	s.dispatcher.HandleRequest("textDocument/completion", s.handleCompletion)

	s.dispatcher.HandleNotification("initialized", s.handleInitialized)
	s.dispatcher.HandleNotification("textDocument/didOpen", s.handleDidOpen)
	s.dispatcher.HandleNotification("textDocument/didChange", s.handleDidChange)
	s.dispatcher.HandleNotification("textDocument/didClose", s.handleDidClose)
}

type clientInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type initializeParams struct {
	ClientInfo *clientInfo `json:"clientInfo"`
}

func (s *Server) handleInitialize(rc *dispatcher.RequestContext) {
	var params initializeParams
	if err := json.Unmarshal(rc.Params, &params); err == nil && params.ClientInfo != nil {
		s.logger.Debug("initialize",
			logging.Fields{}.F("client", params.ClientInfo.Name).F("clientVersion", params.ClientInfo.Version))
	}
	rc.Respond(fixedInitializeResult())
}

func (s *Server) handleInitialized(rc *dispatcher.RequestContext) {
	// No registry to update; spec.md §6 "Ignored".
}

func (s *Server) handleShutdown(rc *dispatcher.RequestContext) {
	s.shutdownRequested.Store(true)
	rc.Respond(nil)
}

type textDocumentIdentifier struct {
	URI     string `json:"uri"`
	Version int    `json:"version"`
}

type didOpenParams struct {
	TextDocument struct {
		textDocumentIdentifier
		Text string `json:"text"`
	} `json:"textDocument"`
}

func (s *Server) handleDidOpen(rc *dispatcher.RequestContext) {
	var params didOpenParams
	if err := json.Unmarshal(rc.Params, &params); err != nil {
		return
	}
	s.docs.open(params.TextDocument.URI, params.TextDocument.Text, params.TextDocument.Version)
}

type contentChange struct {
	Text string `json:"text"`
}

type didChangeParams struct {
	TextDocument   textDocumentIdentifier `json:"textDocument"`
	ContentChanges []contentChange        `json:"contentChanges"`
}

func (s *Server) handleDidChange(rc *dispatcher.RequestContext) {
	var params didChangeParams
	if err := json.Unmarshal(rc.Params, &params); err != nil {
		return
	}
	if len(params.ContentChanges) == 0 {
		return
	}
	// textDocumentSync: 1 (Full) means each change carries the whole
	// document text; the last entry wins if a client ever batches several.
	text := params.ContentChanges[len(params.ContentChanges)-1].Text
	s.docs.change(params.TextDocument.URI, text, params.TextDocument.Version)
}

type didCloseParams struct {
	TextDocument struct {
		URI string `json:"uri"`
	} `json:"textDocument"`
}

func (s *Server) handleDidClose(rc *dispatcher.RequestContext) {
	var params didCloseParams
	if err := json.Unmarshal(rc.Params, &params); err != nil {
		return
	}
	s.docs.close(params.TextDocument.URI)
}

type lspPosition struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

type completionParams struct {
	TextDocument struct {
		URI string `json:"uri"`
	} `json:"textDocument"`
	Position lspPosition `json:"position"`
}

func (s *Server) handleCompletion(rc *dispatcher.RequestContext) {
	var params completionParams
	if err := json.Unmarshal(rc.Params, &params); err != nil {
		rc.Error(transport.CodeInvalidParams, "invalid completion params", nil)
		return
	}

	text, ok := s.docs.get(params.TextDocument.URI)
	if !ok {
		text = ""
	}

	doc := source.Document{URI: params.TextDocument.URI, Text: text}
	cursor := doc.PositionAt(params.Position.Line, params.Position.Character)

	if rc.Cancelled() {
		return
	}

	result := completion.Provide(text, cursor, s.maxItems)
	rc.Respond(result)
}
