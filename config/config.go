// Package config holds the mlsp CLI/REPL configuration, loaded from an
// optional YAML file. The interpreter core never reads configuration; only
// the surrounding tooling does.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete mlsp tool configuration
type Config struct {
	REPL  REPLConfig  `yaml:"repl"`
	Watch WatchConfig `yaml:"watch"`
}

// REPLConfig holds interactive session settings
type REPLConfig struct {
	HistoryFile  string `yaml:"history_file"` // Command history path (default: $TMPDIR/.mlsp_history)
	Prompt       string `yaml:"prompt"`       // Main prompt (default: ">> ")
	Continuation string `yaml:"continuation"` // Prompt while parens are unbalanced (default: ".. ")
}

// WatchConfig holds --watch mode settings
type WatchConfig struct {
	DebounceMS int `yaml:"debounce_ms"` // Quiet period before a re-run (default: 100)
}

// Defaults returns a Config with all default values set
func Defaults() *Config {
	return &Config{
		REPL: REPLConfig{
			HistoryFile:  filepath.Join(os.TempDir(), ".mlsp_history"),
			Prompt:       ">> ",
			Continuation: ".. ",
		},
		Watch: WatchConfig{
			DebounceMS: 100,
		},
	}
}

// Debounce returns the watch debounce as a duration.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Watch.DebounceMS) * time.Millisecond
}

// Load reads a YAML config file, applying it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Discover looks for a config file in the conventional places: ./.mlsp.yaml,
// then $HOME/.mlsp.yaml. When none exists the defaults are returned.
func Discover() (*Config, error) {
	candidates := []string{".mlsp.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".mlsp.yaml"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Defaults(), nil
}
