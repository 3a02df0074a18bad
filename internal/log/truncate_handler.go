package log

import (
	"context"
	"io"
	"log/slog"
)

// DefaultMaxAttrLen is the default cap on logged attribute values.
// Candidate markup runs to kilobytes; debug logs that quote it would
// drown everything else without a cap.
const DefaultMaxAttrLen = 256

// ellipsis marks a truncated attribute value.
const ellipsis = "...(truncated)"

// TruncateHandler wraps an slog.Handler and caps oversized string
// attribute values before passing records through. It intercepts log
// records, shortens any string value beyond the limit, and delegates to
// the underlying handler.
//
// Design decision: We use a handler wrapper rather than trimming at call
// sites because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Call sites can log whole markup values without caring about size
type TruncateHandler struct {
	// handler is the underlying slog handler that receives capped records.
	handler slog.Handler

	// maxLen is the maximum attribute value length in bytes.
	maxLen int
}

// NewTruncateHandler creates a TruncateHandler wrapping the given
// handler. If handler is nil, slog.Default().Handler() is used. A
// non-positive maxLen falls back to DefaultMaxAttrLen.
func NewTruncateHandler(handler slog.Handler, maxLen int) *TruncateHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxAttrLen
	}
	return &TruncateHandler{handler: handler, maxLen: maxLen}
}

// Enabled reports whether the underlying handler is enabled at the level.
func (h *TruncateHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle caps the record's attribute values and delegates.
func (h *TruncateHandler) Handle(ctx context.Context, record slog.Record) error {
	capped := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		capped.AddAttrs(h.cap(attr))
		return true
	})
	return h.handler.Handle(ctx, capped)
}

// WithAttrs returns a TruncateHandler whose underlying handler carries
// the capped attrs.
func (h *TruncateHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	capped := make([]slog.Attr, len(attrs))
	for i, attr := range attrs {
		capped[i] = h.cap(attr)
	}
	return &TruncateHandler{handler: h.handler.WithAttrs(capped), maxLen: h.maxLen}
}

// WithGroup returns a TruncateHandler whose underlying handler carries
// the group.
func (h *TruncateHandler) WithGroup(name string) slog.Handler {
	return &TruncateHandler{handler: h.handler.WithGroup(name), maxLen: h.maxLen}
}

// cap shortens a string attribute value beyond the limit. Group attrs
// are capped recursively; other kinds pass through untouched.
func (h *TruncateHandler) cap(attr slog.Attr) slog.Attr {
	switch attr.Value.Kind() {
	case slog.KindString:
		s := attr.Value.String()
		if len(s) > h.maxLen {
			attr.Value = slog.StringValue(s[:h.maxLen] + ellipsis)
		}
	case slog.KindGroup:
		group := attr.Value.Group()
		capped := make([]slog.Attr, len(group))
		for i, g := range group {
			capped[i] = h.cap(g)
		}
		attr.Value = slog.GroupValue(capped...)
	default:
		// Non-string kinds are bounded by construction.
	}
	return attr
}

// New builds the application logger: a text handler on w wrapped by a
// TruncateHandler. Verbose switches the level to Debug.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	text := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewTruncateHandler(text, DefaultMaxAttrLen))
}
