package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

// Sink receives formatted log records above its own threshold. Console and
// file sinks each hold an independent Level per spec.md §6 ("Console and
// file sinks have independent level thresholds").
type Sink interface {
	Threshold() Level
	Write(record)
	Close() error
}

var levelColor = map[Level]*color.Color{
	LevelTrace:    color.New(color.FgHiBlack),
	LevelDebug:    color.New(color.FgCyan),
	LevelInfo:     color.New(color.FgGreen),
	LevelWarn:     color.New(color.FgYellow),
	LevelError:    color.New(color.FgRed),
	LevelCritical: color.New(color.FgRed, color.Bold),
}

// ConsoleSink writes colorized records to a writer (stderr by default),
// matching the teacher's use of github.com/fatih/color in internal/version
// for terminal output.
type ConsoleSink struct {
	mu        sync.Mutex
	w         io.Writer
	threshold Level
	colorize  bool
}

// NewConsoleSink constructs a console sink writing to w. colorize is
// typically true only when w is a terminal (see cmd/als's tty detection).
func NewConsoleSink(w io.Writer, threshold Level, colorize bool) *ConsoleSink {
	if w == nil {
		w = os.Stderr
	}
	return &ConsoleSink{w: w, threshold: threshold, colorize: colorize}
}

func (s *ConsoleSink) Threshold() Level { return s.threshold }

func (s *ConsoleSink) Write(r record) {
	line := r.format()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.colorize {
		if c, ok := levelColor[r.Level]; ok {
			_, _ = c.Fprintln(s.w, line)
			return
		}
	}
	fmt.Fprintln(s.w, line)
}

func (s *ConsoleSink) Close() error { return nil }

// FileSink appends formatted records to a file for the process lifetime.
// Rotation is explicitly out of scope (spec.md §1/§6).
type FileSink struct {
	mu        sync.Mutex
	f         *os.File
	threshold Level
}

// NewFileSink opens (creating if necessary) path for append-only writes.
func NewFileSink(path string, threshold Level) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %q: %w", path, err)
	}
	return &FileSink{f: f, threshold: threshold}, nil
}

func (s *FileSink) Threshold() Level { return s.threshold }

func (s *FileSink) Write(r record) {
	line := r.format()
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.f, line)
}

func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Close()
}
