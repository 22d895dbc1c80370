package formatter

import (
	"sync/atomic"
	"time"
)

// stamp caches the rendered timestamp for one wall-clock second. The
// header timestamp has second resolution, so within a busy second the
// same bytes can be reused instead of re-running time.Format for every
// event.
type stamp struct {
	sec  int64
	text string
}

var lastStamp atomic.Pointer[stamp]

func appendStamp(dst []byte, t time.Time) []byte {
	sec := t.Unix()
	if s := lastStamp.Load(); s != nil && s.sec == sec {
		return append(dst, s.text...)
	}
	s := &stamp{sec: sec, text: t.Format(timeLayout)}
	lastStamp.Store(s)
	return append(dst, s.text...)
}
