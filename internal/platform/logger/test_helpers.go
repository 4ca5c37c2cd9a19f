package logger

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// TestLogBuffer captures log output in tests. Safe for concurrent writers,
// which matters when the code under test logs from worker goroutines.
type TestLogBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

// Write implements io.Writer so the buffer can back a slog handler.
func (b *TestLogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// String returns everything captured so far.
func (b *TestLogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// GetLogEntries parses the buffer contents as JSON log entries, one per line.
func (b *TestLogBuffer) GetLogEntries() ([]map[string]interface{}, error) {
	scanner := bufio.NewScanner(strings.NewReader(b.String()))

	var entries []map[string]interface{}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, scanner.Err()
}

// SetupTestLogger creates a test logger that writes to a buffer and installs
// it as the default logger. It returns the buffer, the logger, and a cleanup
// function that restores the previous default.
func SetupTestLogger(t *testing.T, opts *slog.HandlerOptions) (*TestLogBuffer, *slog.Logger, func()) {
	t.Helper()

	if opts == nil {
		// Capture all levels by default
		opts = &slog.HandlerOptions{Level: slog.LevelDebug}
	}

	logBuf := &TestLogBuffer{}
	logger := slog.New(slog.NewJSONHandler(logBuf, opts))

	original := slog.Default()
	slog.SetDefault(logger)

	return logBuf, logger, func() { slog.SetDefault(original) }
}

// AssertLogContains fails the test when the captured output does not contain
// the given content.
func AssertLogContains(t *testing.T, logBuf *TestLogBuffer, content string) {
	t.Helper()

	logs := logBuf.String()
	if !strings.Contains(logs, content) {
		t.Errorf("captured logs missing %q\nLogs:\n%s", content, logs)
	}
}

// AssertLogField fails the test unless some captured entry carries the field
// with the expected value.
func AssertLogField(t *testing.T, logBuf *TestLogBuffer, field string, expected interface{}) {
	t.Helper()

	entries, err := logBuf.GetLogEntries()
	if err != nil {
		t.Fatalf("parsing captured log entries: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("no log entries captured")
	}

	for _, entry := range entries {
		if value, ok := entry[field]; ok && value == expected {
			return
		}
	}

	t.Errorf("no captured entry has field %q with value %v", field, expected)
}

// NewLogCaptureContext creates a context carrying a buffer-backed logger, for
// testing code that pulls its logger out of the request context.
func NewLogCaptureContext(t *testing.T) (context.Context, *TestLogBuffer) {
	t.Helper()

	logBuf := &TestLogBuffer{}
	handler := slog.NewJSONHandler(logBuf, &slog.HandlerOptions{Level: slog.LevelDebug})

	return WithLogger(context.Background(), slog.New(handler)), logBuf
}
