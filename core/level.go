package core

import "strings"

// Level represents the severity of a log event. Levels are totally
// ordered: an event passes the engine's gate when its level is at or
// above the configured threshold.
type Level int8

const (
	// DebugLevel for detailed diagnostic output
	DebugLevel Level = iota
	// InfoLevel for general operational messages
	InfoLevel
	// WarnLevel for potentially harmful situations
	WarnLevel
	// ErrorLevel for failures of individual operations
	ErrorLevel
	// FatalLevel for unrecoverable conditions and failed assertions
	FatalLevel
	// NoneLevel is a threshold sentinel that suppresses all output.
	// It is never the level of an emitted event.
	NoneLevel
)

// String returns the display name of the level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	case NoneLevel:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a configuration value into a Level. The value is
// trimmed, one layer of matching surrounding quotes is removed, and the
// comparison is case-insensitive. Accepted tokens are the level names
// (with WARNING and ERR as aliases) and the digits 0-4. The second
// return value reports whether the token was recognized.
func ParseLevel(s string) (Level, bool) {
	s = Unquote(strings.TrimSpace(s))
	if s == "" {
		return DebugLevel, false
	}
	switch strings.ToUpper(s) {
	case "DEBUG", "0":
		return DebugLevel, true
	case "INFO", "1":
		return InfoLevel, true
	case "WARN", "WARNING", "2":
		return WarnLevel, true
	case "ERROR", "ERR", "3":
		return ErrorLevel, true
	case "FATAL", "4":
		return FatalLevel, true
	}
	return DebugLevel, false
}

// Unquote removes one layer of matching surrounding quote characters
// (" or ') from s. Mismatched or lone quotes are left untouched.
func Unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// Output selects which sink(s) receive an event that passed the level
// gate.
type Output uint8

const (
	// OutputConsole writes to the console only (default).
	OutputConsole Output = iota
	// OutputFile writes to the log file only.
	OutputFile
	// OutputBoth writes to the console and the log file.
	OutputBoth
	// OutputNone discards all output.
	OutputNone
)

// String returns the display name of the output destination.
func (o Output) String() string {
	switch o {
	case OutputConsole:
		return "CONSOLE"
	case OutputFile:
		return "FILE"
	case OutputBoth:
		return "BOTH"
	case OutputNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}
