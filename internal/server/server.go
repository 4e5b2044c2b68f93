// Package server wires transport, dispatcher, pool, completion, and
// logging into the running LSP core spec.md §4.6 describes, grounded on
// the teacher's internal/lsp.Server (internal/lsp/server.go) — generalized
// from its hard-coded handleMessage switch onto the dispatcher registry
// built in internal/dispatcher.
package server

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/alif-lang/als/internal/dispatcher"
	"github.com/alif-lang/als/internal/logging"
	"github.com/alif-lang/als/internal/pool"
	"github.com/alif-lang/als/internal/transport"
)

var (
	// ErrExit signals a graceful shutdown after receiving "exit" following
	// a prior "shutdown" request.
	ErrExit = errors.New("server: exit")
	// ErrExitWithoutShutdown signals "exit" received without a preceding
	// "shutdown" request (spec.md §4.6 "non-zero exit code convention").
	ErrExitWithoutShutdown = errors.New("server: exit without shutdown")
)

// drainTimeout is spec.md §5's fixed 5s pool-drain budget on shutdown/exit.
const drainTimeout = 5 * time.Second

// Options configures a Server's pool and completion behavior; the zero
// value matches spec.md §4's built-in defaults.
type Options struct {
	Workers  int
	MaxQueue int
	MaxItems int
}

// readerLike/writerLike avoid importing io just for two one-method
// interfaces already satisfied by *os.File and net.Conn alike.
type readerLike interface {
	Read(p []byte) (n int, err error)
}

type writerLike interface {
	Write(p []byte) (n int, err error)
}

// Server owns the dispatcher, pool, and document store spanning the
// process's lifetime (spec.md §3 "thread-pool worker threads span the
// server's lifetime"). It is not bound to any one connection: Run accepts
// the byte stream to serve per call, so start_socket's "rebuild the
// dispatcher over that connection's streams" (spec.md §4.6) just means
// calling Run again with the newly accepted connection.
type Server struct {
	dispatcher *dispatcher.Dispatcher
	pool       *pool.ThreadPool
	logger     *logging.Logger
	docs       *docStore
	maxItems   int

	shutdownRequested atomic.Bool
}

// New constructs a Server with its own pool and dispatcher. Handlers are
// registered immediately so Run can start dispatching as soon as the first
// message arrives on whatever stream it is later called with.
func New(logger *logging.Logger, opts Options) *Server {
	if logger == nil {
		logger = logging.Default()
	}
	maxItems := opts.MaxItems
	if maxItems <= 0 {
		maxItems = 50
	}
	maxQueue := opts.MaxQueue
	if maxQueue <= 0 {
		maxQueue = 256
	}

	p := pool.NewWithQueue(opts.Workers, maxQueue)
	d := dispatcher.New(p, logger)

	s := &Server{
		dispatcher: d,
		pool:       p,
		logger:     logger,
		docs:       newDocStore(),
		maxItems:   maxItems,
	}
	s.registerHandlers()
	return s
}

// StartStdio runs the server over the process's standard streams until the
// client disconnects or sends exit, per spec.md §4.6 start_stdio().
func StartStdio(ctx context.Context, r readerLike, w writerLike, logger *logging.Logger, opts Options) error {
	return New(logger, opts).Run(ctx, r, w)
}

// StartSocket binds 127.0.0.1:port, accepts exactly one client connection,
// then serves it — spec.md §4.6 start_socket(port)'s "accepts exactly one
// client" rule.
func StartSocket(ctx context.Context, port int, logger *logging.Logger, opts Options) error {
	ln, err := transport.Listen(port)
	if err != nil {
		return err
	}
	defer ln.Close()

	conn, err := ln.Accept()
	if err != nil {
		return err
	}
	defer conn.Close()

	return New(logger, opts).Run(ctx, conn, conn)
}

// Run reads and dispatches messages from r, writing replies to w, until the
// stream ends or exit is received, per spec.md §4.6 run(): "read a message;
// if None, exit; else dispatch. On exit before shutdown, exit code is
// non-zero (convention)." The pool, dispatcher, and document store survive
// across calls, so a socket server may call Run again for a subsequent
// connection.
func (s *Server) Run(ctx context.Context, r readerLike, w writerLike) error {
	framer := transport.NewFramer(r, w)
	for {
		msg, err := framer.Read()
		if err != nil {
			if errors.Is(err, transport.ErrConnectionClosed) {
				return nil
			}
			return err
		}

		if msg.Method == "exit" {
			s.drain()
			if s.shutdownRequested.Load() {
				return ErrExit
			}
			return ErrExitWithoutShutdown
		}

		s.dispatcher.Dispatch(ctx, framer, msg)
	}
}

// Stop requests the pool to stop accepting new work and drains it. Callers
// that own the Run loop's context should cancel it first so Run returns
// promptly; Stop is also safe to call directly by cmd/als on signal
// shutdown.
func (s *Server) Stop() {
	s.drain()
	s.pool.Shutdown()
}

func (s *Server) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	_ = s.pool.WaitForCompletion(ctx)
}

// Dispatcher exposes the underlying dispatcher for tests that need to
// register extra middleware or inspect Stats().
func (s *Server) Dispatcher() *dispatcher.Dispatcher { return s.dispatcher }

// Pool exposes the underlying pool, e.g. for tests that wait for it to
// drain.
func (s *Server) Pool() *pool.ThreadPool { return s.pool }
