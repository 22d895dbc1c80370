package formatter

import (
	"strconv"
	"strings"
	"time"

	"github.com/glyphlog/glyph/core"
)

// ANSI escape codes used by the block layout.
const (
	ansiReset   = "\x1b[0m"
	ansiBold    = "\x1b[1m"
	ansiGray    = "\x1b[90m"
	ansiWhite   = "\x1b[37m"
	ansiCyan    = "\x1b[36m"
	ansiGreen   = "\x1b[32m"
	ansiYellow  = "\x1b[33m"
	ansiRed     = "\x1b[31m"
	ansiMagenta = "\x1b[35m"
)

// levelColors is the fixed severity-to-color table. Levels outside the
// table fall back to the reset code.
var levelColors = [...]string{
	core.DebugLevel: ansiCyan,
	core.InfoLevel:  ansiGreen,
	core.WarnLevel:  ansiYellow,
	core.ErrorLevel: ansiRed,
	core.FatalLevel: ansiMagenta,
}

// LevelColor returns the ANSI color code for a severity level.
func LevelColor(l core.Level) string {
	if int(l) >= 0 && int(l) < len(levelColors) {
		return levelColors[l]
	}
	return ansiReset
}

// Box-drawing connector glyphs. The opening glyph starts a block, the
// vertical glyph continues it, and the closing glyph ends it.
const (
	glyphOpen     = "┏"
	glyphContinue = "┃"
	glyphClose    = "┗"
)

const (
	timeLayout = "2006-01-02 15:04:05"
	levelWidth = 5
)

// indentWidth is the column where continuation lines start: bracketed
// timestamp plus space, padded level name, colon and space.
const indentWidth = len(timeLayout) + 3 + levelWidth + 2

// BlockFormatter renders one log event into a multi-line display
// block: a header line with timestamp, padded level, bracketed tag and
// message, then an optional trace line and numbered detail lines
// joined by box-drawing glyphs. A BlockFormatter is stateless apart
// from its clock and is safe for concurrent use.
type BlockFormatter struct {
	now func() time.Time
}

// NewBlockFormatter returns a formatter stamping events with the wall
// clock.
func NewBlockFormatter() *BlockFormatter {
	return &BlockFormatter{now: time.Now}
}

// Format renders the event. When color is false the output is the
// identical block with every escape sequence absent, byte for byte.
func (f *BlockFormatter) Format(e core.Event, color bool) []byte {
	return f.AppendFormat(nil, e, color)
}

// AppendFormat renders the event onto dst and returns the extended
// slice.
func (f *BlockFormatter) AppendFormat(dst []byte, e core.Event, color bool) []byte {
	lc := LevelColor(e.Level)
	name := e.Level.String()

	// Header: [timestamp] LEVEL: ┏ [TAG] message
	dst = appendCode(dst, color, ansiGray)
	dst = append(dst, '[')
	dst = appendStamp(dst, f.now())
	dst = append(dst, "] "...)
	dst = appendCode(dst, color, lc)
	dst = appendCode(dst, color, ansiBold)
	dst = append(dst, name...)
	for i := len(name); i < levelWidth; i++ {
		dst = append(dst, ' ')
	}
	dst = appendCode(dst, color, ansiReset)
	dst = append(dst, ": "...)
	dst = appendCode(dst, color, ansiWhite)
	dst = append(dst, glyphOpen...)
	dst = append(dst, " ["...)
	dst = appendCode(dst, color, lc)
	dst = append(dst, e.Tag...)
	dst = appendCode(dst, color, ansiWhite)
	dst = append(dst, "] "...)
	dst = append(dst, e.Message...)
	dst = appendCode(dst, color, ansiReset)
	dst = append(dst, '\n')

	if e.Trace != "" {
		dst = appendIndent(dst)
		dst = appendCode(dst, color, ansiWhite)
		dst = append(dst, glyphContinue...)
		dst = append(dst, ' ')
		dst = appendCode(dst, color, lc)
		dst = append(dst, "at: "...)
		dst = appendCode(dst, color, ansiWhite)
		dst = append(dst, ShortenTrace(e.Trace)...)
		dst = appendCode(dst, color, ansiReset)
		dst = append(dst, '\n')
	}

	switch {
	case len(e.Details) > 0:
		for i, d := range e.Details {
			glyph := glyphContinue
			if i == len(e.Details)-1 {
				glyph = glyphClose
			}
			dst = appendIndent(dst)
			dst = appendCode(dst, color, ansiWhite)
			dst = append(dst, glyph...)
			dst = append(dst, ' ')
			dst = appendCode(dst, color, ansiGray)
			dst = append(dst, '[')
			dst = strconv.AppendInt(dst, int64(i+1), 10)
			dst = append(dst, "] "...)
			dst = append(dst, d...)
			dst = appendCode(dst, color, ansiReset)
			dst = append(dst, '\n')
		}
	case e.Trace != "":
		// A trace with no details still needs its closing glyph.
		dst = appendIndent(dst)
		dst = appendCode(dst, color, ansiWhite)
		dst = append(dst, glyphClose...)
		dst = appendCode(dst, color, ansiReset)
		dst = append(dst, '\n')
	}

	return dst
}

func appendCode(dst []byte, color bool, code string) []byte {
	if !color {
		return dst
	}
	return append(dst, code...)
}

func appendIndent(dst []byte) []byte {
	for i := 0; i < indentWidth; i++ {
		dst = append(dst, ' ')
	}
	return dst
}

// ShortenTrace strips the directory prefix from the path component of
// a trace string such as "at src/net/dial.go:42 [dial]", recognizing
// both / and \ separators. This is a pure string transform; the path
// is never touched on disk.
func ShortenTrace(trace string) string {
	head, tail := trace, ""
	if i := strings.Index(trace, " ["); i >= 0 {
		head, tail = trace[:i], trace[i:]
	}
	prefix := ""
	if strings.HasPrefix(head, "at ") {
		prefix, head = head[:3], head[3:]
	}
	if i := strings.LastIndexAny(head, `/\`); i >= 0 {
		head = head[i+1:]
	}
	return prefix + head + tail
}

// StripANSI removes every ESC[...m escape sequence from rendered text
// while preserving all other bytes. An unterminated escape at the end
// of the input is left untouched.
func StripANSI(p []byte) []byte {
	out := make([]byte, 0, len(p))
	for i := 0; i < len(p); {
		if p[i] == 0x1b && i+1 < len(p) && p[i+1] == '[' {
			end := i + 2
			for end < len(p) && p[end] != 'm' {
				end++
			}
			if end < len(p) {
				i = end + 1
				continue
			}
		}
		out = append(out, p[i])
		i++
	}
	return out
}
