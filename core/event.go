package core

import "strings"

// Event is a single log event as handed to the engine. Events are
// constructed per call, consumed synchronously, and never retained.
type Event struct {
	Level   Level
	Tag     string
	Message string
	Details []string
	Trace   string
}

// SplitDetails turns a comma-separated detail string into an ordered
// list of detail entries. Each entry is trimmed, stripped of one layer
// of surrounding quotes, and dropped if empty.
func SplitDetails(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = Unquote(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
