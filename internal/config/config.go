// Package config loads the optional ~/.goalboard.yaml file. Everything in it
// has a sensible default; a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"goalboard/internal/storage"
)

// EnvDBPath overrides every other database path source when set.
const EnvDBPath = "GOALBOARD_DB"

type Config struct {
	// DBPath points at the SQLite state file. Empty means the default
	// location under the user's home directory.
	DBPath string `yaml:"db_path"`
	// DarkMode seeds the dark-mode flag on a fresh install only; once the
	// flag has been persisted, the stored value wins.
	DarkMode bool `yaml:"dark_mode"`
}

func defaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".goalboard.yaml"), nil
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file yields the zero config.
func Load(path string) (*Config, error) {
	var err error
	if path == "" {
		path, err = defaultPath()
		if err != nil {
			return nil, err
		}
	}
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// ResolveDBPath picks the database location: env override first, then the
// config file, then the default next to the user's home directory.
func (c *Config) ResolveDBPath() (string, error) {
	if p := os.Getenv(EnvDBPath); p != "" {
		return p, nil
	}
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	return storage.DefaultDBPath()
}
