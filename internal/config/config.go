package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds server-wide defaults read from config.yaml in the
// configuration directory. Every field can be overridden per invocation by
// flags or tool inputs.
type Config struct {
	// GitBin is the git executable to invoke. Empty means "git" on PATH.
	GitBin string `yaml:"git_bin"`
	// DefaultDir is the repository used when a call does not name one.
	DefaultDir string `yaml:"default_dir"`
	// Tenant is attached to every operation context for correlation.
	Tenant string `yaml:"tenant"`
	// LogLevel is one of debug, info, warn, error. Empty means info.
	LogLevel string `yaml:"log_level"`
}

// Load reads config.yaml from the configuration directory.
// A missing file yields the zero config; a malformed file is an error.
func Load() (Config, error) {
	dir := Dir()
	if dir == "" {
		return Config{}, nil
	}
	return loadFile(filepath.Join(dir, "config.yaml"))
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
