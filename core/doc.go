// Package core defines the shared value types used across glyph.
//
// It provides the Level type for severity filtering, the Output type
// for sink selection, and the Event type that represents a single log
// event on its way to the engine. All three are pure data: comparisons
// use ordinal ordering and nothing in this package performs I/O.
//
// ParseLevel is the single normalization routine for configuration
// values: it trims whitespace, strips one layer of matching quotes,
// and accepts both level names and the digits 0-4. The config package
// builds on it rather than duplicating the token table.
//
// Trace captures a call site as a pre-formatted "file:line
// [function]" string, which is how the severity convenience functions
// in the logger package attach source locations without the engine
// ever touching the runtime.
package core
