package dispatcher

import (
	"sync"
	"time"

	"github.com/alif-lang/als/internal/logging"
)

// LoggingMiddleware logs pre at Debug and post (with duration) at Debug,
// per spec.md §4.3's "Standard middlewares" list.
type LoggingMiddleware struct {
	logger *logging.Logger
}

// NewLoggingMiddleware constructs a LoggingMiddleware writing to logger.
func NewLoggingMiddleware(logger *logging.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{logger: logger}
}

func (m *LoggingMiddleware) PreProcess(rc *RequestContext) bool {
	m.logger.Debug("dispatch pre", logging.Fields{}.F("method", rc.Method))
	return true
}

func (m *LoggingMiddleware) PostProcess(rc *RequestContext, success bool) {
	m.logger.Debug("dispatch post",
		logging.Fields{}.F("method", rc.Method).FDuration("duration", time.Since(rc.StartTime)))
}

// MetricsMiddleware accumulates per-method call counts and cumulative wall
// time, per spec.md §4.3.
type MetricsMiddleware struct {
	mu        sync.Mutex
	counts    map[string]uint64
	durations map[string]time.Duration
}

// NewMetricsMiddleware constructs an empty metrics collector.
func NewMetricsMiddleware() *MetricsMiddleware {
	return &MetricsMiddleware{
		counts:    make(map[string]uint64),
		durations: make(map[string]time.Duration),
	}
}

func (m *MetricsMiddleware) PreProcess(rc *RequestContext) bool {
	return true
}

func (m *MetricsMiddleware) PostProcess(rc *RequestContext, success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[rc.Method]++
	m.durations[rc.Method] += time.Since(rc.StartTime)
}

// MethodStats is a snapshot of one method's call count and total latency.
type MethodStats struct {
	Method string
	Count  uint64
	Total  time.Duration
}

// Snapshot returns per-method counters collected so far.
func (m *MetricsMiddleware) Snapshot() []MethodStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MethodStats, 0, len(m.counts))
	for method, count := range m.counts {
		out = append(out, MethodStats{Method: method, Count: count, Total: m.durations[method]})
	}
	return out
}
