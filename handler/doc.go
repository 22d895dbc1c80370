// Package handler provides the sink writers the engine dispatches
// rendered log text to.
//
// Sinks are deliberately thin: the engine owns filtering, formatting,
// and serialization, so a sink only moves bytes. ConsoleSink wraps
// stdout (with ANSI translation on legacy Windows consoles and
// terminal detection for color) or any injected io.Writer. FileSink
// appends plain text to a file opened create-or-append; closing it is
// idempotent and a write after close is a silent no-op.
package handler
