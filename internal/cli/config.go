package cli

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration file. Flags set explicitly on
// the command line win over file values.
type Config struct {
	// Output is the report file path (default compare.html).
	Output string `yaml:"output"`

	// DB is the SQLite database path (default harcmp.db).
	DB string `yaml:"db"`

	// TimeThresholdMs flags a matched pair as time-changed when the absolute
	// duration delta exceeds it (default 100).
	TimeThresholdMs float64 `yaml:"time_threshold_ms"`
}

// LoadConfig reads a YAML config file. Unknown keys are rejected so typos
// surface instead of silently falling back to defaults.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
