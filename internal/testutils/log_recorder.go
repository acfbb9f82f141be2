package testutils

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// LogEntry is one captured log record with its attributes flattened.
type LogEntry struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// LogRecorder is a memory-backed slog.Handler. Handlers derived with
// WithAttrs share the recorder's entries.
type LogRecorder struct {
	mu      *sync.Mutex
	entries *[]LogEntry
	attrs   []slog.Attr
}

// NewLogRecorder creates an empty recorder.
func NewLogRecorder() *LogRecorder {
	return &LogRecorder{mu: &sync.Mutex{}, entries: &[]LogEntry{}}
}

// Logger returns a logger writing to the recorder.
func (h *LogRecorder) Logger() *slog.Logger {
	return slog.New(h)
}

// Enabled satisfies slog.Handler interface
func (h *LogRecorder) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// Handle satisfies slog.Handler interface
func (h *LogRecorder) Handle(_ context.Context, r slog.Record) error {
	entry := LogEntry{Level: r.Level, Message: r.Message, Attrs: make(map[string]any)}
	for _, attr := range h.attrs {
		entry.Attrs[attr.Key] = attr.Value.Any()
	}
	r.Attrs(func(attr slog.Attr) bool {
		entry.Attrs[attr.Key] = attr.Value.Any()
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	*h.entries = append(*h.entries, entry)
	return nil
}

// WithAttrs satisfies slog.Handler interface
func (h *LogRecorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LogRecorder{
		mu:      h.mu,
		entries: h.entries,
		attrs:   append(append([]slog.Attr{}, h.attrs...), attrs...),
	}
}

// WithGroup satisfies slog.Handler interface. Groups are ignored.
func (h *LogRecorder) WithGroup(_ string) slog.Handler {
	return h
}

// Entries returns all captured log entries.
func (h *LogRecorder) Entries() []LogEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]LogEntry(nil), *h.entries...)
}

// Find returns the first entry with the given level and message.
func (h *LogRecorder) Find(level slog.Level, message string) (LogEntry, bool) {
	for _, e := range h.Entries() {
		if e.Level == level && e.Message == message {
			return e, true
		}
	}
	return LogEntry{}, false
}

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
