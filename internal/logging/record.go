package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// timestampLayout is the ISO-ish timestamp written at the start of every
// file record.
const timestampLayout = "2006-01-02 15:04:05.000"

// RecordHandler is a slog.Handler that writes plain-text records in the
// log-file format:
//
//	2026-01-07 12:34:56.789 [INFO] bulk.go:42 - message key=value
//
// The source location is resolved from the record's program counter. A
// single handler instance assumes a single writer goroutine; the mutex only
// guards against interleaved writes through cloned handlers.
type RecordHandler struct {
	mu     *sync.Mutex
	w      io.Writer
	level  slog.Leveler
	prefix string // preformatted attrs from WithAttrs
	group  string
}

// NewRecordHandler constructs a RecordHandler writing to w, dropping records
// below the given level.
func NewRecordHandler(w io.Writer, level Level) *RecordHandler {
	return &RecordHandler{
		mu:    &sync.Mutex{},
		w:     w,
		level: slog.Level(level),
	}
}

// Enabled reports whether records at the given level are written.
func (h *RecordHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes a single record.
func (h *RecordHandler) Handle(_ context.Context, r slog.Record) error {
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	var b strings.Builder
	b.WriteString(ts.Format(timestampLayout))
	b.WriteString(" [")
	b.WriteString(r.Level.String())
	b.WriteString("] ")
	b.WriteString(sourceTag(r.PC))
	b.WriteString(" - ")
	b.WriteString(r.Message)
	b.WriteString(h.prefix)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.group, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

// WithAttrs returns a handler that includes the given attrs in every record.
func (h *RecordHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var b strings.Builder
	for _, a := range attrs {
		appendAttr(&b, h.group, a)
	}
	clone := *h
	clone.prefix += b.String()
	return &clone
}

// WithGroup returns a handler that qualifies subsequent attr keys with name.
func (h *RecordHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.group = h.group + name + "."
	return &clone
}

// sourceTag resolves a program counter to a "file.go:line" tag.
func sourceTag(pc uintptr) string {
	if pc == 0 {
		return "???:0"
	}
	frames := runtime.CallersFrames([]uintptr{pc})
	frame, _ := frames.Next()
	if frame.File == "" {
		return "???:0"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
}

func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Value.Kind() == slog.KindGroup {
		sub := group + a.Key + "."
		if a.Key == "" {
			sub = group
		}
		for _, ga := range a.Value.Group() {
			appendAttr(b, sub, ga)
		}
		return
	}
	if a.Key == "" {
		return
	}
	fmt.Fprintf(b, " %s%s=%v", group, a.Key, a.Value.Any())
}
