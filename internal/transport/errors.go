package transport

import "errors"

// Fatal errors returned by Read/Write: once one of these occurs the
// connection is no longer usable and the caller must tear down the server
// loop (spec.md §4.1, §7).
var (
	// ErrConnectionClosed is returned when the peer closes the stream,
	// whether cleanly at a header boundary or mid-payload.
	ErrConnectionClosed = errors.New("transport: connection closed")

	// ErrInvalidHeader is returned when the header block is malformed: a
	// line with no colon, a missing blank-line terminator, or no
	// Content-Length header at all.
	ErrInvalidHeader = errors.New("transport: invalid header block")

	// ErrOversizedMessage is returned when Content-Length exceeds the
	// 100 MiB cap spec.md §4.1 sets.
	ErrOversizedMessage = errors.New("transport: message exceeds size limit")
)

// MaxMessageSize is the largest payload this transport will read, per
// spec.md §4.1's "N > 100 MiB -> reject" rule.
const MaxMessageSize = 100 * 1024 * 1024
