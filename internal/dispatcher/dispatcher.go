package dispatcher

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alif-lang/als/internal/logging"
	"github.com/alif-lang/als/internal/pool"
	"github.com/alif-lang/als/internal/transport"
)

// CancelMethod is the reserved notification spec.md §4.3/§6 defines for
// cooperative cancellation. It is handled internally and is never routed
// to a registered handler.
const CancelMethod = "$/cancelRequest"

// Dispatcher routes classified messages onto a ThreadPool: requests at
// Normal priority, notifications at Low priority (spec.md §4.3/§5), and
// owns the active-requests table a $/cancelRequest notification consults
// to find the CancellationToken belonging to an in-flight request id.
type Dispatcher struct {
	mu                   sync.Mutex
	requestHandlers      map[string]HandlerFunc
	notificationHandlers map[string]HandlerFunc
	middleware           []Middleware
	active               map[transport.ID]*pool.CancellationToken

	pool   *pool.ThreadPool
	logger *logging.Logger

	totalRequests      atomic.Uint64
	successfulRequests atomic.Uint64
	failedRequests     atomic.Uint64
	cancelledRequests  atomic.Uint64
}

// Stats is a snapshot of dispatcher-level request counters (spec.md §4.3
// "total_requests == successful_requests + failed_requests +
// cancelled_requests").
type Stats struct {
	TotalRequests      uint64
	SuccessfulRequests uint64
	FailedRequests     uint64
	CancelledRequests  uint64
}

// New constructs a Dispatcher that submits request/notification tasks to p
// and logs through logger.
func New(p *pool.ThreadPool, logger *logging.Logger) *Dispatcher {
	return &Dispatcher{
		requestHandlers:      make(map[string]HandlerFunc),
		notificationHandlers: make(map[string]HandlerFunc),
		active:               make(map[transport.ID]*pool.CancellationToken),
		pool:                 p,
		logger:               logger,
	}
}

// Use appends mw to the middleware chain, run in registration order for
// PreProcess and reverse order for PostProcess.
func (d *Dispatcher) Use(mw Middleware) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.middleware = append(d.middleware, mw)
}

// HandleRequest registers h for a Request method.
func (d *Dispatcher) HandleRequest(method string, h HandlerFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.requestHandlers[method] = h
}

// HandleNotification registers h for a Notification method.
func (d *Dispatcher) HandleNotification(method string, h HandlerFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.notificationHandlers[method] = h
}

// Stats returns a snapshot of request counters.
func (d *Dispatcher) Stats() Stats {
	return Stats{
		TotalRequests:      d.totalRequests.Load(),
		SuccessfulRequests: d.successfulRequests.Load(),
		FailedRequests:     d.failedRequests.Load(),
		CancelledRequests:  d.cancelledRequests.Load(),
	}
}

// Dispatch routes one classified message, per spec.md §4.3's per-kind
// rules. Request and Notification both return immediately after handing a
// task to the pool (or, for Request with no handler, after synchronously
// writing the method-not-found error); Dispatch never blocks on handler
// execution. Response/ErrorResponse messages are logged and dropped, since
// this core is a server, never a caller.
func (d *Dispatcher) Dispatch(ctx context.Context, framer *transport.Framer, msg *transport.Message) {
	switch msg.Kind {
	case transport.KindRequest:
		d.dispatchRequest(ctx, framer, msg)
	case transport.KindNotification:
		if msg.Method == CancelMethod {
			d.cancelRequested(msg.Params)
			return
		}
		d.dispatchNotification(ctx, framer, msg)
	default:
		d.logger.Debug("dropping reply-kind message", logging.Fields{}.FInt("kind", int(msg.Kind)))
	}
}

func (d *Dispatcher) dispatchRequest(ctx context.Context, framer *transport.Framer, msg *transport.Message) {
	d.mu.Lock()
	h, ok := d.requestHandlers[msg.Method]
	d.mu.Unlock()

	if !ok {
		d.totalRequests.Add(1)
		d.failedRequests.Add(1)
		_ = framer.WriteError(msg.ID, transport.CodeMethodNotFound,
			"Method not found", map[string]string{"method": msg.Method})
		return
	}

	token := pool.NewCancellationToken()
	d.registerActive(msg.ID, token)

	// Request dispatch owns its own cancellation counting (dispatcher-level
	// stats are distinct from the pool's own submitted/completed/cancelled
	// counters), so the job is submitted uncancellable at the pool level and
	// runRequest performs the token check itself as its first step.
	rc := &RequestContext{Context: ctx, Message: msg, Method: msg.Method, Params: msg.Params, Token: token, framer: framer, StartTime: time.Now()}
	err := d.pool.Submit(requestPriority(msg.Method), func() {
		d.runRequest(rc, h)
	})
	if err != nil {
		d.unregisterActive(msg.ID)
		d.totalRequests.Add(1)
		d.failedRequests.Add(1)
		_ = framer.WriteError(msg.ID, transport.CodeRequestFailed, err.Error(), nil)
	}
}

func (d *Dispatcher) runRequest(rc *RequestContext, h HandlerFunc) {
	defer d.unregisterActive(rc.Message.ID)

	if rc.Token.Cancelled() {
		d.totalRequests.Add(1)
		d.cancelledRequests.Add(1)
		return
	}

	d.mu.Lock()
	mws := append([]Middleware(nil), d.middleware...)
	d.mu.Unlock()

	ran := 0
	proceed := true
	for _, mw := range mws {
		ran++
		if !mw.PreProcess(rc) {
			proceed = false
			break
		}
	}

	success := false
	if proceed {
		func() {
			defer func() {
				if r := recover(); r != nil {
					rc.Error(transport.CodeInternalError, fmt.Sprintf("Internal error: %v", r), nil)
				}
			}()
			h(rc)
			success = true
		}()
	}

	for i := ran - 1; i >= 0; i-- {
		mws[i].PostProcess(rc, success)
	}

	d.totalRequests.Add(1)
	if success {
		d.successfulRequests.Add(1)
	} else {
		d.failedRequests.Add(1)
	}
}

// requestPriority is spec.md §5's "shutdown-class ... at Urgent when
// re-dispatched" rule: every other request runs at Normal.
func requestPriority(method string) pool.Priority {
	if method == "shutdown" {
		return pool.PriorityUrgent
	}
	return pool.PriorityNormal
}

func (d *Dispatcher) dispatchNotification(ctx context.Context, framer *transport.Framer, msg *transport.Message) {
	d.mu.Lock()
	h, ok := d.notificationHandlers[msg.Method]
	d.mu.Unlock()

	if !ok {
		d.logger.Debug("no handler for notification", logging.Fields{}.F("method", msg.Method))
		return
	}

	rc := &RequestContext{Context: ctx, Message: msg, Method: msg.Method, Params: msg.Params, Token: pool.NewCancellationToken(), framer: framer, StartTime: time.Now()}
	err := d.pool.Submit(pool.PriorityLow, func() {
		defer func() {
			if r := recover(); r != nil {
				d.logger.Error("notification handler panicked",
					logging.Fields{}.F("method", msg.Method).F("recover", fmt.Sprint(r)))
			}
		}()
		h(rc)
	})
	if err != nil {
		d.logger.Warn("dropped notification", logging.Fields{}.F("method", msg.Method).F("error", err.Error()))
	}
}

func (d *Dispatcher) registerActive(id transport.ID, token *pool.CancellationToken) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.active[id] = token
}

func (d *Dispatcher) unregisterActive(id transport.ID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.active, id)
}

func (d *Dispatcher) cancelRequested(params []byte) {
	var body struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(params, &body); err != nil {
		return
	}
	id, ok := transport.ParseID(body.ID)
	if !ok {
		return
	}
	d.mu.Lock()
	token := d.active[id]
	d.mu.Unlock()
	if token != nil {
		token.Cancel()
	}
}
