package logger

import (
	"sync"

	"github.com/glyphlog/glyph/config"
	"github.com/glyphlog/glyph/core"
	"github.com/glyphlog/glyph/handler"
)

var (
	instanceOnce sync.Once
	instance     *Engine
)

// Instance returns the process-wide shared Engine. The first call
// constructs it: the console sink is set up for the platform and the
// initial threshold is resolved from the conventional config paths,
// falling back to DebugLevel when no source yields a level.
// Construction happens exactly once even under concurrent first
// callers.
func Instance() *Engine {
	instanceOnce.Do(func() {
		instance = New(WithConsole(handler.NewConsoleSink()))
		if level, err := config.LoadLevelAny(config.DefaultPaths()...); err == nil {
			instance.SetLevel(level)
		}
	})
	return instance
}

// Package-level convenience functions over the shared Engine. Each
// severity function captures its own call site.

// SetLevel changes the shared engine's severity threshold.
func SetLevel(l core.Level) { Instance().SetLevel(l) }

// Level returns the shared engine's severity threshold.
func Level() core.Level { return Instance().Level() }

// SetOutput changes the shared engine's output destination.
func SetOutput(o core.Output) { Instance().SetOutput(o) }

// Output returns the shared engine's output destination.
func Output() core.Output { return Instance().Output() }

// SetLogFile opens a log file on the shared engine.
func SetLogFile(path string) bool { return Instance().SetLogFile(path) }

// CloseLogFile closes the shared engine's log file, if open.
func CloseLogFile() { Instance().CloseLogFile() }

// LoadConfig applies a config source to the shared engine.
func LoadConfig(path string) bool { return Instance().LoadConfig(path) }

// Assert logs a FATAL event on the shared engine and returns false
// when condition is false.
func Assert(condition bool, tag, msg string, details ...string) bool {
	if condition {
		return true
	}
	Instance().Log(core.FatalLevel, tag, msg, details, core.Trace(1))
	return false
}

// Debug logs a DEBUG event on the shared engine.
func Debug(tag, msg string, details ...string) {
	Instance().Log(core.DebugLevel, tag, msg, details, core.Trace(1))
}

// Info logs an INFO event on the shared engine.
func Info(tag, msg string, details ...string) {
	Instance().Log(core.InfoLevel, tag, msg, details, core.Trace(1))
}

// Warn logs a WARN event on the shared engine.
func Warn(tag, msg string, details ...string) {
	Instance().Log(core.WarnLevel, tag, msg, details, core.Trace(1))
}

// Error logs an ERROR event on the shared engine.
func Error(tag, msg string, details ...string) {
	Instance().Log(core.ErrorLevel, tag, msg, details, core.Trace(1))
}

// Fatal logs a FATAL event on the shared engine. It does not exit the
// process.
func Fatal(tag, msg string, details ...string) {
	Instance().Log(core.FatalLevel, tag, msg, details, core.Trace(1))
}
