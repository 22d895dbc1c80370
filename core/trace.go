package core

import (
	"runtime"
	"strconv"
	"strings"
)

// Trace captures the call site skip frames above the caller and
// formats it as "<file>:<line> [<function>]". The file is reduced to
// its final path component and the function to its bare name. An
// empty string is returned when the caller cannot be resolved.
func Trace(skip int) string {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}
	fn := "unknown"
	if f := runtime.FuncForPC(pc); f != nil {
		fn = f.Name()
		if i := strings.LastIndexByte(fn, '/'); i >= 0 {
			fn = fn[i+1:]
		}
		if i := strings.IndexByte(fn, '.'); i >= 0 {
			fn = fn[i+1:]
		}
	}
	if i := strings.LastIndexByte(file, '/'); i >= 0 {
		file = file[i+1:]
	}

	var b strings.Builder
	b.Grow(len(file) + len(fn) + 16)
	b.WriteString(file)
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(line))
	b.WriteString(" [")
	b.WriteString(fn)
	b.WriteByte(']')
	return b.String()
}
