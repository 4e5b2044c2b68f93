package pool

import "errors"

// ErrQueueFull is returned by Submit/SubmitCancellable when the queue has
// reached max_queue (spec.md §4.2 "fails with QueueFull when
// queue.len() >= max_queue").
var ErrQueueFull = errors.New("pool: queue full")

// ErrStopped is returned by Submit/SubmitCancellable after Shutdown
// (spec.md §4.2 "fails with Stopped after shutdown").
var ErrStopped = errors.New("pool: stopped")
