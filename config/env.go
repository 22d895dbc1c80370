package config

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/glyphlog/glyph/core"
)

// parseEnv scans flat KEY=VALUE lines. Blank lines and lines starting
// with # are ignored. The last syntactically valid occurrence of the
// level key wins; invalid values are skipped and scanning continues.
func parseEnv(data []byte) (core.Level, error) {
	var (
		level core.Level
		found bool
	)
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		key, value, ok := splitAssignment(sc.Text())
		if !ok || key != LevelKey {
			continue
		}
		if l, valid := core.ParseLevel(value); valid {
			level, found = l, true
		}
	}
	if !found {
		return core.DebugLevel, ErrNoLevel
	}
	return level, nil
}

// splitAssignment breaks a line into key and raw value around the
// first '='. Comment and blank lines report ok=false.
func splitAssignment(line string) (key, value string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}
	key, value, ok = strings.Cut(trimmed, "=")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), value, true
}
