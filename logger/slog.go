package logger

import (
	"context"
	"log/slog"

	"github.com/glyphlog/glyph/core"
)

// SlogHandler adapts an Engine to slog.Handler, letting glyph serve
// as a backend for the standard library's structured logger. Record
// attributes become numbered detail lines rendered as key=value.
type SlogHandler struct {
	engine *Engine
	tag    string
	attrs  []string
	group  string
}

// NewSlogHandler wraps the engine as a slog.Handler. Events are
// emitted under the given tag.
func NewSlogHandler(e *Engine, tag string) *SlogHandler {
	return &SlogHandler{engine: e, tag: tag}
}

// Enabled reports whether records at the given level would pass the
// engine's gate.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevel(level) >= h.engine.Level()
}

// Handle converts the record into a log event and hands it to the
// engine.
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	details := make([]string, 0, len(h.attrs)+record.NumAttrs())
	details = append(details, h.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		details = append(details, h.attrString(a))
		return true
	})
	h.engine.Log(slogLevel(record.Level), h.tag, record.Message, details, "")
	return nil
}

// WithAttrs returns a handler whose events carry the additional
// attributes as leading details.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	merged := make([]string, len(h.attrs), len(h.attrs)+len(attrs))
	copy(merged, h.attrs)
	for _, a := range attrs {
		merged = append(merged, h.attrString(a))
	}
	return &SlogHandler{engine: h.engine, tag: h.tag, attrs: merged, group: h.group}
}

// WithGroup returns a handler that prefixes subsequent attribute keys
// with the group name.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &SlogHandler{engine: h.engine, tag: h.tag, attrs: h.attrs, group: group}
}

func (h *SlogHandler) attrString(a slog.Attr) string {
	key := a.Key
	if h.group != "" {
		key = h.group + "." + key
	}
	return key + "=" + a.Value.String()
}

func slogLevel(l slog.Level) core.Level {
	switch {
	case l < slog.LevelInfo:
		return core.DebugLevel
	case l < slog.LevelWarn:
		return core.InfoLevel
	case l < slog.LevelError:
		return core.WarnLevel
	case l == slog.LevelError:
		return core.ErrorLevel
	default:
		return core.FatalLevel
	}
}
