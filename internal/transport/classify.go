package transport

import (
	"encoding/json"
	"errors"
	"fmt"
)

// errParseJSON marks a classify failure caused by malformed JSON syntax
// rather than a valid-JSON-but-invalid-shape payload, so Read can reply
// with CodeParseError instead of CodeInvalidRequest.
var errParseJSON = errors.New("transport: malformed JSON")

// classify validates a raw JSON-RPC payload and classifies it into one of
// Request/Notification/Response/ErrorResponse (spec.md §3). The validation
// rule is strict: a payload must carry exactly one of {method, result,
// error}, the jsonrpc field must equal "2.0" exactly (missing or any other
// value is rejected), and Response/ErrorResponse must carry an id.
//
// On success it returns the classified Message. On failure it returns an
// error describing the shape violation together with whatever id could be
// recovered from the payload (NullID if none), so the caller can still
// reply with a well-formed -32600 Invalid Request.
func classify(raw []byte) (*Message, ID, error) {
	var env wireEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, NullID, fmt.Errorf("%w: %v", errParseJSON, err)
	}

	id, hasID := env.idValue()
	if !hasID {
		id = NullID
	}

	if env.JSONRPC != "2.0" {
		return nil, id, fmt.Errorf("unsupported jsonrpc version %q", env.JSONRPC)
	}

	hasMethod := env.Method != ""
	hasResult := len(env.Result) > 0
	hasError := env.Error != nil

	present := 0
	for _, b := range []bool{hasMethod, hasResult, hasError} {
		if b {
			present++
		}
	}
	if present != 1 {
		return nil, id, fmt.Errorf("payload must carry exactly one of method/result/error, got %d", present)
	}

	switch {
	case hasMethod && env.hasID():
		return &Message{Kind: KindRequest, ID: id, Method: env.Method, Params: env.Params}, id, nil
	case hasMethod:
		return &Message{Kind: KindNotification, Method: env.Method, Params: env.Params}, id, nil
	case hasResult:
		if !env.hasID() {
			return nil, id, fmt.Errorf("response payload missing id")
		}
		return &Message{Kind: KindResponse, ID: id, Result: env.Result}, id, nil
	default: // hasError
		if !env.hasID() {
			return nil, id, fmt.Errorf("error response payload missing id")
		}
		return &Message{Kind: KindErrorResponse, ID: id, Error: env.Error}, id, nil
	}
}
