// Package transport implements the framed JSON-RPC 2.0 wire format spec.md
// §4.1 describes: Content-Length-prefixed payloads over a byte stream, with
// strict shape validation and thread-safe writes. It is grounded on the
// teacher's internal/lsp/jsonrpc.go readMessage/writeMessage pair, extended
// to the full header-tolerance, size-limit, and JSON-RPC classification
// rules spec.md requires.
package transport

import "encoding/json"

// Kind classifies a parsed message per spec.md §3's tagged variant.
type Kind int

const (
	KindRequest Kind = iota
	KindNotification
	KindResponse
	KindErrorResponse
)

// ID is a JSON-RPC id: one of {integer, string, null}.
type ID struct {
	IsNull   bool
	IsString bool
	Number   int64
	Str      string
}

// NullID is the null id used for parse errors that predate id recovery.
var NullID = ID{IsNull: true}

// NumberID constructs an integer id.
func NumberID(n int64) ID { return ID{Number: n} }

// StringID constructs a string id.
func StringID(s string) ID { return ID{IsString: true, Str: s} }

// MarshalJSON renders the id in its wire form.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.IsNull {
		return []byte("null"), nil
	}
	if id.IsString {
		return json.Marshal(id.Str)
	}
	return json.Marshal(id.Number)
}

// Equal reports whether two ids are the same JSON-RPC id.
func (id ID) Equal(other ID) bool {
	if id.IsNull || other.IsNull {
		return id.IsNull == other.IsNull
	}
	if id.IsString != other.IsString {
		return false
	}
	if id.IsString {
		return id.Str == other.Str
	}
	return id.Number == other.Number
}

// RPCError is the {code, message, data} triple carried by an ErrorResponse.
type RPCError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Message is a parsed, classified JSON-RPC message (spec.md §3).
type Message struct {
	Kind   Kind
	ID     ID
	Method string
	Params json.RawMessage
	Result json.RawMessage
	Error  *RPCError
}

// wireEnvelope is the raw shape used to sniff and validate an incoming
// payload before it is classified into a Message.
type wireEnvelope struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

func (e wireEnvelope) hasID() bool {
	return len(e.ID) > 0 && string(e.ID) != "null"
}

func (e wireEnvelope) idValue() (ID, bool) {
	return ParseID(e.ID)
}

// ParseID decodes a raw JSON-RPC id value (number, string, or null) into an
// ID. It is exported so the dispatcher can recover the id carried inside a
// $/cancelRequest notification's params without re-parsing the whole
// envelope.
func ParseID(raw json.RawMessage) (ID, bool) {
	if len(raw) == 0 {
		return ID{}, false
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return NumberID(n), true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return StringID(s), true
	}
	if string(raw) == "null" {
		return NullID, true
	}
	return ID{}, false
}
