// Package logger is the public API of glyph.
//
// The Engine is the state machine at the center: it owns the severity
// threshold, the output destination, and the log-file handle, and it
// dispatches rendered events to the console and file sinks. All state
// lives behind the engine's own locks, so any number of goroutines
// may log and reconfigure concurrently; each event's multi-line block
// is written atomically.
//
// Most programs use the shared engine through the package-level
// functions:
//
//	logger.SetLevel(core.WarnLevel)
//	logger.Warn("CONFIG", "using default configuration")
//	logger.Error("DB", "query failed", "table: users", "timeout: 5s")
//
// The first use constructs the shared engine exactly once, sets up
// the platform console, and resolves the initial threshold from the
// conventional config files (.env, config.env, config.ini,
// settings.ini, logging.yaml); when none yields a level the threshold
// starts at DebugLevel.
//
// The severity functions Debug through Fatal capture their call site
// and attach it to the block as an "at: file:line [function]" line.
// Fatal is a severity, not a control-flow primitive: nothing in this
// package exits the process or panics. Assert follows the same rule:
// a false condition produces one FATAL block and a false return, and
// the caller decides what happens next.
//
// Libraries that should not depend on shared state can construct
// their own engine with New and the WithConsole, WithLevel, and
// WithOutput options. NewSlogHandler adapts either kind of engine to
// log/slog.
package logger
