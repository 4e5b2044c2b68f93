package pool

import "sync/atomic"

// CancellationToken is a cooperative cancellation flag shared between the
// submitter and the worker that eventually dispatches the job. Per
// spec.md §4.2/§9 it is checked only at dispatch time; a job already
// running is never preempted mid-execution.
type CancellationToken struct {
	cancelled atomic.Bool
}

// NewCancellationToken returns a token in the not-cancelled state.
func NewCancellationToken() *CancellationToken {
	return &CancellationToken{}
}

// Cancel marks the token cancelled. Safe to call more than once and from
// any goroutine.
func (t *CancellationToken) Cancel() {
	if t == nil {
		return
	}
	t.cancelled.Store(true)
}

// Cancelled reports whether Cancel has been called.
func (t *CancellationToken) Cancelled() bool {
	return t != nil && t.cancelled.Load()
}
