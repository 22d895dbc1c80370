// Package formatter renders log events into display text.
//
// The BlockFormatter produces a multi-line block per event: a header
// line carrying the timestamp, the level name padded to a fixed
// column, the bracketed tag and the message, followed by an optional
// call-site trace line and numbered detail lines. Box-drawing glyphs
// tie the block together: ┏ opens it, ┃ continues it, and ┗ marks the
// final line.
//
// Rendering is sink-agnostic. The colored variant is meant for
// consoles; the file sink feeds the same bytes through StripANSI so
// log files contain plain text. Passing color=false to Format yields
// the stripped output directly. The level-to-color table is fixed
// data, identical whichever path produced the text.
//
// Timestamps have second resolution, so the formatter caches the
// rendered stamp for the current second rather than re-formatting on
// every event.
package formatter
