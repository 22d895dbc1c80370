package logger

import (
	"errors"
	"sync"

	"github.com/glyphlog/glyph/config"
	"github.com/glyphlog/glyph/core"
	"github.com/glyphlog/glyph/formatter"
	"github.com/glyphlog/glyph/handler"
)

// Engine owns the process-wide logging state: the severity threshold,
// the output destination, and the log-file handle. The threshold has
// its own lock so a slow sink write never blocks a level check; the
// destination and file handle share a second lock that is held across
// the render+write step, which keeps each event's block atomic and a
// (destination, handle) pair consistent.
//
// The level gate and the write are separate critical sections. A
// SetLevel racing an in-flight Log may admit or suppress a borderline
// event; output is filtered as of a recent level, never corrupted.
type Engine struct {
	levelMu sync.Mutex
	level   core.Level

	outMu  sync.Mutex
	output core.Output
	file   *handler.FileSink

	console *handler.ConsoleSink
	fmtr    *formatter.BlockFormatter
}

// Option configures an Engine during construction.
type Option func(*Engine)

// WithConsole sets the console sink. Tests use this to capture
// console output.
func WithConsole(s *handler.ConsoleSink) Option {
	return func(e *Engine) { e.console = s }
}

// WithLevel sets the initial severity threshold.
func WithLevel(l core.Level) Option {
	return func(e *Engine) {
		if l >= core.DebugLevel && l <= core.NoneLevel {
			e.level = l
		}
	}
}

// WithOutput sets the initial output destination.
func WithOutput(o core.Output) Option {
	return func(e *Engine) {
		if o <= core.OutputNone {
			e.output = o
		}
	}
}

// New constructs an explicitly owned Engine. Most programs use the
// shared Instance instead; New exists for embedding and for tests.
// The defaults are DebugLevel, console output, no log file.
func New(opts ...Option) *Engine {
	e := &Engine{
		level:  core.DebugLevel,
		output: core.OutputConsole,
		fmtr:   formatter.NewBlockFormatter(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.console == nil {
		e.console = handler.NewConsoleSink()
	}
	return e
}

// SetLevel changes the severity threshold. Values outside the
// DEBUG..NONE range are ignored.
func (e *Engine) SetLevel(l core.Level) {
	if l < core.DebugLevel || l > core.NoneLevel {
		return
	}
	e.levelMu.Lock()
	e.level = l
	e.levelMu.Unlock()
}

// Level returns the current severity threshold.
func (e *Engine) Level() core.Level {
	e.levelMu.Lock()
	defer e.levelMu.Unlock()
	return e.level
}

// SetOutput changes the output destination. Unknown values are
// ignored.
func (e *Engine) SetOutput(o core.Output) {
	if o > core.OutputNone {
		return
	}
	e.outMu.Lock()
	e.output = o
	e.outMu.Unlock()
}

// Output returns the current output destination.
func (e *Engine) Output() core.Output {
	e.outMu.Lock()
	defer e.outMu.Unlock()
	return e.output
}

// SetLogFile opens path for appending and makes it the file sink,
// closing any previously open file first. On failure the engine is
// left with no file open and file-destined output is dropped; the
// return value reports success.
func (e *Engine) SetLogFile(path string) bool {
	e.outMu.Lock()
	defer e.outMu.Unlock()

	if e.file != nil {
		e.file.Close()
		e.file = nil
	}
	if path == "" {
		return false
	}
	sink, err := handler.OpenFileSink(path)
	if err != nil {
		return false
	}
	e.file = sink
	return true
}

// LogFilePath returns the path of the open log file, or "" when none
// is open.
func (e *Engine) LogFilePath() string {
	e.outMu.Lock()
	defer e.outMu.Unlock()
	if e.file == nil {
		return ""
	}
	return e.file.Path()
}

// CloseLogFile closes the file sink if one is open. It is safe to
// call at any time, any number of times.
func (e *Engine) CloseLogFile() {
	e.outMu.Lock()
	defer e.outMu.Unlock()
	if e.file != nil {
		e.file.Close()
		e.file = nil
	}
}

// LoadConfig resolves a severity threshold from the file at path and
// applies it. The return value reports whether the file was readable
// at all; a readable file without a valid level still returns true
// while the threshold stays unchanged.
func (e *Engine) LoadConfig(path string) bool {
	level, err := config.LoadLevel(path)
	if err == nil {
		e.SetLevel(level)
		return true
	}
	return errors.Is(err, config.ErrNoLevel)
}

// bufPool recycles render buffers across Log calls.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 256)
		return &b
	},
}

// Log emits one event. The level gate runs first, under the level
// lock alone: filtered events return before any formatting or output
// locking. Passed events are rendered and written under the output
// lock, colored for the console and color-stripped for the file.
func (e *Engine) Log(level core.Level, tag, msg string, details []string, trace string) {
	if level < core.DebugLevel || level >= core.NoneLevel {
		return
	}

	e.levelMu.Lock()
	pass := level >= e.level
	e.levelMu.Unlock()
	if !pass {
		return
	}

	ev := core.Event{
		Level:   level,
		Tag:     tag,
		Message: msg,
		Details: details,
		Trace:   trace,
	}

	e.outMu.Lock()
	defer e.outMu.Unlock()

	toConsole := e.output == core.OutputConsole || e.output == core.OutputBoth
	toFile := (e.output == core.OutputFile || e.output == core.OutputBoth) && e.file != nil
	if !toConsole && !toFile {
		return
	}

	bp := bufPool.Get().(*[]byte)
	colored := e.fmtr.AppendFormat((*bp)[:0], ev, true)

	if toConsole {
		if e.console.ColorEnabled() {
			e.console.Write(colored)
		} else {
			e.console.Write(formatter.StripANSI(colored))
		}
	}
	if toFile {
		e.file.Write(formatter.StripANSI(colored))
	}

	*bp = colored[:0]
	bufPool.Put(bp)
}

// Assert logs a FATAL event and returns false when condition is
// false; a true condition performs no work. Assert never terminates
// the process.
func (e *Engine) Assert(condition bool, tag, msg string, details []string, trace string) bool {
	if condition {
		return true
	}
	e.Log(core.FatalLevel, tag, msg, details, trace)
	return false
}

// Debug logs a DEBUG event with the call site attached.
func (e *Engine) Debug(tag, msg string, details ...string) {
	e.Log(core.DebugLevel, tag, msg, details, core.Trace(1))
}

// Info logs an INFO event with the call site attached.
func (e *Engine) Info(tag, msg string, details ...string) {
	e.Log(core.InfoLevel, tag, msg, details, core.Trace(1))
}

// Warn logs a WARN event with the call site attached.
func (e *Engine) Warn(tag, msg string, details ...string) {
	e.Log(core.WarnLevel, tag, msg, details, core.Trace(1))
}

// Error logs an ERROR event with the call site attached.
func (e *Engine) Error(tag, msg string, details ...string) {
	e.Log(core.ErrorLevel, tag, msg, details, core.Trace(1))
}

// Fatal logs a FATAL event with the call site attached. It does not
// exit the process.
func (e *Engine) Fatal(tag, msg string, details ...string) {
	e.Log(core.FatalLevel, tag, msg, details, core.Trace(1))
}
