package logger_test

import (
	"github.com/glyphlog/glyph/core"
	"github.com/glyphlog/glyph/logger"
)

// Simple programs log through the shared engine without any setup.
func Example() {
	logger.Info("APP", "application started")
	logger.Warn("CONFIG", "using default configuration")
	logger.Error("DB", "failed to connect", "host: localhost", "retries: 3")
}

// Raising the threshold suppresses lower-severity events.
func Example_levelFiltering() {
	logger.SetLevel(core.WarnLevel)
	logger.Debug("NET", "this is filtered out")
	logger.Warn("NET", "this is emitted")
}

// A log file receives the same blocks as the console, minus color.
func Example_fileOutput() {
	if logger.SetLogFile("app.log") {
		defer logger.CloseLogFile()
		logger.SetOutput(core.OutputBoth)
		logger.Info("APP", "written to console and file")
	}
}

// Assert logs a FATAL block when the condition fails and reports the
// outcome; it never stops the process.
func Example_assert() {
	ok := logger.Assert(1+1 == 2, "MATH", "arithmetic broke")
	_ = ok
}
