package core

import (
	"regexp"
	"strings"
	"testing"
)

func TestTrace_Format(t *testing.T) {
	tr := Trace(0)
	re := regexp.MustCompile(`^trace_test\.go:\d+ \[TestTrace_Format\]$`)
	if !re.MatchString(tr) {
		t.Errorf("Trace(0) = %q, want match for %q", tr, re)
	}
}

func TestTrace_SkipFrames(t *testing.T) {
	capture := func() string { return Trace(1) }
	tr := capture()
	if !strings.Contains(tr, "TestTrace_SkipFrames") {
		t.Errorf("Trace(1) = %q, want the caller of the closure", tr)
	}
}

func TestTrace_BadSkip(t *testing.T) {
	if tr := Trace(10_000); tr != "" {
		t.Errorf("Trace with absurd skip = %q, want empty", tr)
	}
}
