// Package dispatcher routes classified transport.Messages to registered
// method handlers, matching the teacher's internal/lsp/server.go
// handleMessage switch but generalized per spec.md §4.3 into a registry
// with middleware, single-shot reply semantics, pool-backed execution, and
// an active-requests table that $/cancelRequest can reach into.
package dispatcher

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/alif-lang/als/internal/pool"
	"github.com/alif-lang/als/internal/transport"
)

// RequestContext is the value handed to a HandlerFunc. Respond and Error
// are single-shot: only the first call of either takes effect, matching
// spec.md §3's "respond and error ... after invocation, further calls are
// no-ops" invariant.
type RequestContext struct {
	Context   context.Context
	Message   *transport.Message
	Method    string
	Params    []byte
	Token     *pool.CancellationToken
	StartTime time.Time

	framer    *transport.Framer
	responded atomic.Bool
}

// Respond sends a successful result. A no-op on notifications (which carry
// no id to reply to) and on any call after the first.
func (rc *RequestContext) Respond(result any) {
	if rc.Message.Kind != transport.KindRequest {
		return
	}
	if !rc.responded.CompareAndSwap(false, true) {
		return
	}
	_ = rc.framer.WriteResponse(rc.Message.ID, result)
}

// Error sends an error response. Same single-shot, request-only rule as
// Respond.
func (rc *RequestContext) Error(code int, message string, data any) {
	if rc.Message.Kind != transport.KindRequest {
		return
	}
	if !rc.responded.CompareAndSwap(false, true) {
		return
	}
	_ = rc.framer.WriteError(rc.Message.ID, code, message, data)
}

// Cancelled reports whether the request's CancellationToken has been
// cancelled. Handlers that do meaningful work should check this between
// expensive steps and return early if true (spec.md §5 "long-running
// handlers are expected to poll their cancellation token").
func (rc *RequestContext) Cancelled() bool {
	return rc.Token.Cancelled()
}
