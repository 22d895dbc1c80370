package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"

	"github.com/glyphlog/glyph/core"
)

// LevelKey is the recognized configuration key. The match is
// case-sensitive.
const LevelKey = "LOG_LEVEL"

var (
	// ErrNotFound reports that the source file does not exist or
	// could not be read.
	ErrNotFound = errors.New("config: source not found")
	// ErrNoLevel reports that the source was readable but contained
	// no valid level value.
	ErrNoLevel = errors.New("config: no valid level in source")
)

// DefaultPaths returns the conventional config filenames tried in
// order at engine construction time.
func DefaultPaths() []string {
	return []string{".env", "config.env", "config.ini", "settings.ini", "logging.yaml"}
}

// LoadLevel reads a severity threshold from the file at path. The
// grammar is selected by extension: .ini files use the sectioned
// grammar, .yaml/.yml files the YAML grammar, and everything else the
// flat KEY=VALUE grammar. A missing file yields ErrNotFound; a
// readable file without a valid level yields ErrNoLevel. Malformed
// lines never abort the scan.
func LoadLevel(path string) (core.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.DebugLevel, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ini":
		return parseINI(data)
	case ".yaml", ".yml":
		return parseYAML(data)
	default:
		return parseEnv(data)
	}
}

// LoadLevelAny tries sources in the given priority order and returns
// the level from the first one that yields a valid value. When none
// does, the errors from every source are combined so callers can still
// distinguish missing files from files without a usable key.
func LoadLevelAny(paths ...string) (core.Level, error) {
	var errs error
	for _, p := range paths {
		level, err := LoadLevel(p)
		if err == nil {
			return level, nil
		}
		errs = multierr.Append(errs, err)
	}
	if errs == nil {
		errs = ErrNoLevel
	}
	return core.DebugLevel, errs
}

// Exists reports whether the source file at path is readable at all,
// independent of its contents.
func Exists(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
