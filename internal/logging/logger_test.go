package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alif-lang/als/internal/logging"
)

func TestLoggerFiltersByThreshold(t *testing.T) {
	var buf bytes.Buffer
	sink := logging.NewConsoleSink(&buf, logging.LevelWarn, false)
	logger := logging.New(sink)

	logger.Debug("hidden")
	logger.Info("also hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected sub-threshold records to be dropped, got: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("expected WARN record to be written, got: %q", out)
	}
}

func TestLoggerIndependentSinkThresholds(t *testing.T) {
	var console, file bytes.Buffer
	logger := logging.New(
		logging.NewConsoleSink(&console, logging.LevelError, false),
		logging.NewConsoleSink(&file, logging.LevelDebug, false),
	)

	logger.Debug("only in file sink")

	if console.Len() != 0 {
		t.Fatalf("console sink should have filtered the debug record, got %q", console.String())
	}
	if !strings.Contains(file.String(), "only in file sink") {
		t.Fatalf("file-threshold sink should have recorded the debug record")
	}
}

func TestParseLevelUnknownFallsBackToInfo(t *testing.T) {
	if got := logging.ParseLevel("bogus"); got != logging.LevelInfo {
		t.Fatalf("got %v, want LevelInfo", got)
	}
	if got := logging.ParseLevel("WARN"); got != logging.LevelWarn {
		t.Fatalf("got %v, want LevelWarn", got)
	}
}

func TestRecordFormatIncludesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.NewConsoleSink(&buf, logging.LevelInfo, false))
	logger.Info("dispatch", logging.Fields{}.F("method", "initialize").FInt("id", 1))

	line := buf.String()
	if !strings.Contains(line, "[INFO]") {
		t.Fatalf("expected level tag, got %q", line)
	}
	if !strings.Contains(line, "method=initialize") || !strings.Contains(line, "id=1") {
		t.Fatalf("expected structured fields, got %q", line)
	}
}
