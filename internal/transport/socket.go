package transport

import (
	"fmt"
	"net"
)

// Listen opens a TCP listener on the given port for the socket transport
// mode (spec.md §6 "--socket PORT"). It binds to loopback only; the
// protocol has no authentication layer of its own (spec.md §7 Non-goals),
// so exposing it beyond localhost is left to the operator's network
// configuration, matching the teacher's own bare net.Listen in
// cmd/surge/lsp.go.
func Listen(port int) (net.Listener, error) {
	ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return nil, fmt.Errorf("transport: listen on port %d: %w", port, err)
	}
	return ln, nil
}
