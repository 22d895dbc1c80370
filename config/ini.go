package config

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/glyphlog/glyph/core"
)

// recognizedSections are the INI section names (compared
// case-insensitively) that scope acceptance of the level key.
var recognizedSections = map[string]bool{
	"logging":   true,
	"log":       true,
	"debug":     true,
	"debugging": true,
}

// parseINI scans [section]-headed KEY=VALUE lines. Comments may start
// with # or ;. Occurrences inside a recognized section win, with later
// assignments overriding earlier ones. An occurrence outside any
// recognized section is kept as a fallback only if it is the first one
// and no section-scoped value has been accepted yet.
func parseINI(data []byte) (core.Level, error) {
	var (
		sectioned     core.Level
		haveSectioned bool
		fallback      core.Level
		haveFallback  bool
	)

	inRecognized := false
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			name := strings.ToLower(strings.TrimSpace(line[1 : len(line)-1]))
			inRecognized = recognizedSections[name]
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok || strings.TrimSpace(key) != LevelKey {
			continue
		}
		level, valid := core.ParseLevel(value)
		if !valid {
			continue
		}
		if inRecognized {
			sectioned, haveSectioned = level, true
		} else if !haveSectioned && !haveFallback {
			fallback, haveFallback = level, true
		}
	}

	switch {
	case haveSectioned:
		return sectioned, nil
	case haveFallback:
		return fallback, nil
	default:
		return core.DebugLevel, ErrNoLevel
	}
}
