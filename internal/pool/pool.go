package pool

import (
	"container/heap"
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// ThreadPool is a bounded set of worker goroutines draining a single
// priority queue. Workers check a job's CancellationToken only at dispatch
// time (spec.md §4.2, §9) — once fn is running it runs to completion.
type ThreadPool struct {
	mu       sync.Mutex
	cond     *sync.Cond
	queue    jobHeap
	nextSeq  uint64
	closed   bool
	workers  int
	shrinkBy int
	maxQueue int

	pending sync.WaitGroup
	group   *errgroup.Group

	submitted      atomic.Uint64
	completed      atomic.Uint64
	cancelled      atomic.Uint64
	failed         atomic.Uint64
	totalExecNanos atomic.Int64
}

// Stats is a point-in-time snapshot of pool activity (spec.md §4.2 "stats").
// submitted == completed + cancelled + failed + queued + currently-executing
// holds at every point (spec.md §3); testable property P8 narrows that to
// submitted == completed + cancelled + failed once the pool has drained.
type Stats struct {
	Submitted     uint64
	Completed     uint64
	Cancelled     uint64
	Failed        uint64
	TotalExecTime time.Duration
	AvgExecTime   time.Duration
	Queued        int
	ActiveWorkers int
}

func clampWorkers(n int) int {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n < 1 {
		n = 1
	}
	if n > 16 {
		n = 16
	}
	return n
}

// New constructs a pool with the given worker count and no queue limit. A
// count <= 0 selects hardware parallelism clamped to [1, 16], matching
// SPEC_FULL.md's pool.workers = 0 configuration default.
func New(workers int) *ThreadPool {
	return NewWithQueue(workers, 0)
}

// NewWithQueue constructs a pool with the given worker count and a bounded
// queue. maxQueue <= 0 means unbounded, matching the default New behavior;
// SPEC_FULL.md's pool.max_queue = 256 configuration default is passed here
// by internal/server.
func NewWithQueue(workers, maxQueue int) *ThreadPool {
	p := &ThreadPool{workers: clampWorkers(workers), maxQueue: maxQueue}
	p.cond = sync.NewCond(&p.mu)
	p.group = new(errgroup.Group)
	for i := 0; i < p.workers; i++ {
		p.group.Go(func() error {
			p.runWorker()
			return nil
		})
	}
	return p
}

// Submit queues fn at the given priority with no cancellation support. It
// returns ErrStopped after Shutdown and ErrQueueFull when max_queue is
// reached (spec.md §4.2); callers that don't need the failure modes may
// discard the error.
func (p *ThreadPool) Submit(priority Priority, fn func()) error {
	return p.submit(priority, nil, fn)
}

// SubmitCancellable queues fn at the given priority, skipping it instead of
// running it if token is cancelled by the time a worker dequeues it. Same
// error semantics as Submit.
func (p *ThreadPool) SubmitCancellable(priority Priority, token *CancellationToken, fn func()) error {
	return p.submit(priority, token, fn)
}

func (p *ThreadPool) submit(priority Priority, token *CancellationToken, fn func()) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrStopped
	}
	if p.maxQueue > 0 && len(p.queue) >= p.maxQueue {
		return ErrQueueFull
	}
	p.nextSeq++
	p.pending.Add(1)
	heap.Push(&p.queue, &job{seq: p.nextSeq, priority: priority, token: token, fn: fn})
	p.submitted.Add(1)
	p.cond.Signal()
	return nil
}

func (p *ThreadPool) runWorker() {
	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.closed && p.shrinkBy == 0 {
			p.cond.Wait()
		}
		if p.shrinkBy > 0 {
			p.shrinkBy--
			p.mu.Unlock()
			return
		}
		if len(p.queue) == 0 {
			// closed with nothing left to drain
			p.mu.Unlock()
			return
		}
		j, _ := heap.Pop(&p.queue).(*job)
		p.mu.Unlock()

		if j.token.Cancelled() {
			p.cancelled.Add(1)
			p.pending.Done()
			continue
		}
		p.runJob(j)
	}
}

// runJob executes a single job's fn, recovering from a panic instead of
// letting it kill the worker goroutine (spec.md §4.2 "Failure": task
// exceptions/panics are caught, counted as failed, and do not terminate
// the worker). Exec time is recorded whether the job completes or panics.
func (p *ThreadPool) runJob(j *job) {
	start := time.Now()
	defer func() {
		p.totalExecNanos.Add(int64(time.Since(start)))
		if r := recover(); r != nil {
			p.failed.Add(1)
		} else {
			p.completed.Add(1)
		}
		p.pending.Done()
	}()
	j.fn()
}

// Resize changes the worker count, spawning additional workers or marking
// the requested number for graceful exit on their next idle wake.
func (p *ThreadPool) Resize(n int) {
	n = clampWorkers(n)
	p.mu.Lock()
	delta := n - p.workers
	p.workers = n
	p.mu.Unlock()

	if delta > 0 {
		for i := 0; i < delta; i++ {
			p.group.Go(func() error {
				p.runWorker()
				return nil
			})
		}
		return
	}
	if delta < 0 {
		p.mu.Lock()
		p.shrinkBy += -delta
		p.cond.Broadcast()
		p.mu.Unlock()
	}
}

// CancelAll marks every job currently queued with a CancellationToken as
// cancelled; jobs already dispatched to a worker are unaffected.
func (p *ThreadPool) CancelAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, j := range p.queue {
		if j.token != nil {
			j.token.Cancel()
		}
	}
}

// WaitForCompletion blocks until every submitted job has either completed
// or been skipped as cancelled, or ctx is done first.
func (p *ThreadPool) WaitForCompletion(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.pending.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops accepting new jobs, drains whatever remains queued, and
// waits for every worker goroutine to exit.
func (p *ThreadPool) Shutdown() {
	p.mu.Lock()
	p.closed = true
	p.cond.Broadcast()
	p.mu.Unlock()
	_ = p.group.Wait()
}

// Stats returns a snapshot of pool counters.
func (p *ThreadPool) Stats() Stats {
	p.mu.Lock()
	queued := len(p.queue)
	workers := p.workers
	p.mu.Unlock()

	completed := p.completed.Load()
	failed := p.failed.Load()
	totalExec := time.Duration(p.totalExecNanos.Load())
	var avgExec time.Duration
	if ran := completed + failed; ran > 0 {
		avgExec = totalExec / time.Duration(ran)
	}

	return Stats{
		Submitted:     p.submitted.Load(),
		Completed:     completed,
		Cancelled:     p.cancelled.Load(),
		Failed:        failed,
		TotalExecTime: totalExec,
		AvgExecTime:   avgExec,
		Queued:        queued,
		ActiveWorkers: workers,
	}
}
