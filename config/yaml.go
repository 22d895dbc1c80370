package config

import (
	"gopkg.in/yaml.v3"

	"github.com/glyphlog/glyph/core"
)

// yamlSource mirrors the accepted YAML shape: a level under a logging
// block, with a bare top-level level as fallback.
type yamlSource struct {
	Level   string `yaml:"level"`
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// parseYAML reads the level from a YAML settings file. Malformed
// documents and unrecognized tokens behave as "no valid level", never
// as a hard failure.
func parseYAML(data []byte) (core.Level, error) {
	var src yamlSource
	if err := yaml.Unmarshal(data, &src); err != nil {
		return core.DebugLevel, ErrNoLevel
	}
	for _, raw := range []string{src.Logging.Level, src.Level} {
		if level, ok := core.ParseLevel(raw); ok {
			return level, nil
		}
	}
	return core.DebugLevel, ErrNoLevel
}
