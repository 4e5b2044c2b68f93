package logging

import (
	"sync"
	"time"
)

// Logger fans a record out to every attached sink whose threshold it meets.
// Handler registries and everything else in this server are owned by
// Server and passed by reference (spec.md §9); the logger is the one
// process-global singleton, matching the teacher's own logging posture.
type Logger struct {
	mu    sync.RWMutex
	sinks []Sink
}

// New constructs a Logger with the given sinks.
func New(sinks ...Sink) *Logger {
	return &Logger{sinks: sinks}
}

// AddSink attaches an additional sink at runtime.
func (l *Logger) AddSink(s Sink) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sinks = append(l.sinks, s)
}

// Close closes every attached sink, returning the first error encountered.
func (l *Logger) Close() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var first error
	for _, s := range l.sinks {
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (l *Logger) log(level Level, msg string, fields Fields) {
	r := record{Time: time.Now(), Level: level, Message: msg, Fields: fields}
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, s := range l.sinks {
		if s.Threshold() != LevelOff && level >= s.Threshold() {
			s.Write(r)
		}
	}
}

func (l *Logger) Trace(msg string, fields ...Fields)    { l.log(LevelTrace, msg, join(fields)) }
func (l *Logger) Debug(msg string, fields ...Fields)    { l.log(LevelDebug, msg, join(fields)) }
func (l *Logger) Info(msg string, fields ...Fields)     { l.log(LevelInfo, msg, join(fields)) }
func (l *Logger) Warn(msg string, fields ...Fields)     { l.log(LevelWarn, msg, join(fields)) }
func (l *Logger) Error(msg string, fields ...Fields)    { l.log(LevelError, msg, join(fields)) }
func (l *Logger) Critical(msg string, fields ...Fields) { l.log(LevelCritical, msg, join(fields)) }

func join(fs []Fields) Fields {
	if len(fs) == 0 {
		return nil
	}
	return fs[0]
}

var (
	defaultMu     sync.Mutex
	defaultLogger *Logger
)

// Default returns the process-wide logger, initializing it to a
// console-only Info-level logger on first use.
func Default() *Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = New(NewConsoleSink(nil, LevelInfo, false))
	}
	return defaultLogger
}

// SetDefault installs l as the process-wide logger.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}
