package dispatcher_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alif-lang/als/internal/dispatcher"
	"github.com/alif-lang/als/internal/logging"
	"github.com/alif-lang/als/internal/pool"
	"github.com/alif-lang/als/internal/transport"
)

func newHarness() (*dispatcher.Dispatcher, *pool.ThreadPool, *transport.Framer, *bytes.Buffer) {
	p := pool.New(2)
	var out bytes.Buffer
	framer := transport.NewFramer(&bytes.Buffer{}, &out)
	d := dispatcher.New(p, logging.New())
	return d, p, framer, &out
}

func TestDispatchRoutesRegisteredRequest(t *testing.T) {
	d, p, framer, out := newHarness()
	defer p.Shutdown()

	d.HandleRequest("ping", func(rc *dispatcher.RequestContext) {
		rc.Respond(map[string]string{"pong": "ok"})
	})

	msg := &transport.Message{Kind: transport.KindRequest, ID: transport.NumberID(1), Method: "ping"}
	d.Dispatch(context.Background(), framer, msg)
	require.NoError(t, p.WaitForCompletion(context.Background()))

	assert.Contains(t, out.String(), `"pong":"ok"`)
	assert.Equal(t, uint64(1), d.Stats().SuccessfulRequests)
}

func TestDispatchRepliesMethodNotFound(t *testing.T) {
	d, p, framer, out := newHarness()
	defer p.Shutdown()

	msg := &transport.Message{Kind: transport.KindRequest, ID: transport.NumberID(2), Method: "nope"}
	d.Dispatch(context.Background(), framer, msg)

	assert.Contains(t, out.String(), `"code":-32601`)
	assert.Equal(t, uint64(1), d.Stats().FailedRequests)
}

func TestDispatchOnlyRepliesOnce(t *testing.T) {
	d, p, framer, out := newHarness()
	defer p.Shutdown()

	d.HandleRequest("double", func(rc *dispatcher.RequestContext) {
		rc.Respond("first")
		rc.Respond("second")
		rc.Error(transport.CodeInternalError, "should be ignored", nil)
	})

	msg := &transport.Message{Kind: transport.KindRequest, ID: transport.NumberID(3), Method: "double"}
	d.Dispatch(context.Background(), framer, msg)
	require.NoError(t, p.WaitForCompletion(context.Background()))

	count := bytes.Count(out.Bytes(), []byte("Content-Length"))
	assert.Equal(t, 1, count, "expected exactly one frame written, got %q", out.String())
	assert.Contains(t, out.String(), "first")
}

func TestCancelRequestCancelsActiveToken(t *testing.T) {
	d, p, framer, _ := newHarness()
	defer p.Shutdown()

	ready := make(chan struct{})
	proceed := make(chan struct{})
	var cancelledDuringRun bool
	d.HandleRequest("slow", func(rc *dispatcher.RequestContext) {
		close(ready)
		<-proceed
		cancelledDuringRun = rc.Cancelled()
	})

	msg := &transport.Message{Kind: transport.KindRequest, ID: transport.NumberID(4), Method: "slow"}
	d.Dispatch(context.Background(), framer, msg)
	<-ready

	params, err := json.Marshal(map[string]any{"id": 4})
	require.NoError(t, err)
	cancelMsg := &transport.Message{Kind: transport.KindNotification, Method: dispatcher.CancelMethod, Params: params}
	d.Dispatch(context.Background(), framer, cancelMsg)

	close(proceed)
	require.NoError(t, p.WaitForCompletion(context.Background()))
	assert.True(t, cancelledDuringRun)
}

func TestCancelBeforeDispatchSkipsHandlerSilently(t *testing.T) {
	d, p, framer, out := newHarness()
	defer p.Shutdown()

	ran := false
	d.HandleRequest("blocked", func(rc *dispatcher.RequestContext) { ran = true })

	// Fill the single worker so the request sits queued long enough to cancel.
	p2 := pool.New(1)
	defer p2.Shutdown()
	d2 := dispatcher.New(p2, logging.New())
	d2.HandleRequest("blocked", func(rc *dispatcher.RequestContext) { ran = true })
	gate := make(chan struct{})
	p2.Submit(pool.PriorityUrgent, func() { <-gate })

	msg := &transport.Message{Kind: transport.KindRequest, ID: transport.NumberID(5), Method: "blocked"}
	d2.Dispatch(context.Background(), framer, msg)

	params, err := json.Marshal(map[string]any{"id": 5})
	require.NoError(t, err)
	d2.Dispatch(context.Background(), framer, &transport.Message{Kind: transport.KindNotification, Method: dispatcher.CancelMethod, Params: params})

	close(gate)
	require.NoError(t, p2.WaitForCompletion(context.Background()))

	assert.False(t, ran)
	assert.Equal(t, uint64(1), d2.Stats().CancelledRequests)
	assert.Empty(t, out.String())
	_ = d
}

func TestHandlerPanicBecomesInternalError(t *testing.T) {
	d, p, framer, out := newHarness()
	defer p.Shutdown()

	d.HandleRequest("boom", func(rc *dispatcher.RequestContext) {
		panic("kaboom")
	})

	msg := &transport.Message{Kind: transport.KindRequest, ID: transport.NumberID(6), Method: "boom"}
	d.Dispatch(context.Background(), framer, msg)
	require.NoError(t, p.WaitForCompletion(context.Background()))

	assert.Contains(t, out.String(), `"code":-32603`)
	assert.Equal(t, uint64(1), d.Stats().FailedRequests)
}

type recordingMiddleware struct {
	name  string
	order *[]string
	allow bool
}

func (m *recordingMiddleware) PreProcess(rc *dispatcher.RequestContext) bool {
	*m.order = append(*m.order, m.name+"-pre")
	return m.allow
}

func (m *recordingMiddleware) PostProcess(rc *dispatcher.RequestContext, success bool) {
	*m.order = append(*m.order, m.name+"-post")
}

func TestMiddlewareRunsPreInOrderAndPostInReverse(t *testing.T) {
	d, p, framer, _ := newHarness()
	defer p.Shutdown()

	var order []string
	d.Use(&recordingMiddleware{name: "outer", order: &order, allow: true})
	d.Use(&recordingMiddleware{name: "inner", order: &order, allow: true})
	d.HandleRequest("m", func(rc *dispatcher.RequestContext) {
		order = append(order, "handler")
		rc.Respond(nil)
	})

	msg := &transport.Message{Kind: transport.KindRequest, ID: transport.NumberID(7), Method: "m"}
	d.Dispatch(context.Background(), framer, msg)
	require.NoError(t, p.WaitForCompletion(context.Background()))

	assert.Equal(t, []string{"outer-pre", "inner-pre", "handler", "inner-post", "outer-post"}, order)
}

func TestMiddlewareVetoSkipsHandlerButRunsRanPostHooks(t *testing.T) {
	d, p, framer, out := newHarness()
	defer p.Shutdown()

	var order []string
	d.Use(&recordingMiddleware{name: "first", order: &order, allow: true})
	d.Use(&recordingMiddleware{name: "vetoing", order: &order, allow: false})
	d.Use(&recordingMiddleware{name: "never-reached", order: &order, allow: true})
	handlerRan := false
	d.HandleRequest("vetoed", func(rc *dispatcher.RequestContext) {
		handlerRan = true
		rc.Respond(nil)
	})

	msg := &transport.Message{Kind: transport.KindRequest, ID: transport.NumberID(8), Method: "vetoed"}
	d.Dispatch(context.Background(), framer, msg)
	require.NoError(t, p.WaitForCompletion(context.Background()))

	assert.False(t, handlerRan)
	assert.Equal(t, []string{"first-pre", "vetoing-pre", "vetoing-post", "first-post"}, order)
	assert.Empty(t, out.String())
	assert.Equal(t, uint64(1), d.Stats().FailedRequests)
}

func TestNotificationHandlerRunsWithoutWireReply(t *testing.T) {
	d, p, framer, out := newHarness()
	defer p.Shutdown()

	ran := make(chan struct{})
	d.HandleNotification("initialized", func(rc *dispatcher.RequestContext) {
		close(ran)
	})

	msg := &transport.Message{Kind: transport.KindNotification, Method: "initialized"}
	d.Dispatch(context.Background(), framer, msg)

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("notification handler never ran")
	}
	assert.Empty(t, out.String())
}
