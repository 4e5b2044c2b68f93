package transport

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// readHeader reads a Content-Length-delimited header block, tolerating both
// "\r\n" and bare "\n" line endings the way the teacher's jsonrpc.go does,
// and returns the declared payload size.
func readHeader(r *bufio.Reader) (int, error) {
	contentLength := -1
	sawLine := false

	for {
		line, err := r.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				if !sawLine && line == "" {
					return 0, ErrConnectionClosed
				}
				return 0, ErrInvalidHeader
			}
			return 0, ErrInvalidHeader
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			// blank line terminates the header block
			if contentLength < 0 {
				return 0, ErrInvalidHeader
			}
			return contentLength, nil
		}
		sawLine = true

		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return 0, ErrInvalidHeader
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if strings.EqualFold(name, "Content-Length") {
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil || n <= 0 {
				// spec.md §4.1 step 2: a zero-length body has no possible
				// JSON-RPC payload, so it fails the connection rather than
				// being read as an empty (and then unparseable) message.
				return 0, ErrInvalidHeader
			}
			size, err := safecast.Conv[int](n)
			if err != nil {
				return 0, ErrOversizedMessage
			}
			contentLength = size
		}
		// Content-Type and any other header is accepted and ignored, as
		// spec.md §4.1 only requires Content-Length.
	}
}
