// Package config resolves settings from defaults, the config file and the
// environment. Root flags are applied last by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	EnvHome     = "TOGETHER_HOME"
	EnvConfig   = "TOGETHER_CONFIG"
	EnvTheme    = "TOGETHER_THEME"
	EnvLogLevel = "TOGETHER_LOG_LEVEL"
	EnvNickname = "TOGETHER_NICKNAME"

	configFileName = "config.toml"
)

// Config is the resolved application configuration.
type Config struct {
	Theme    string `toml:"theme"`     // classic | neon | mono
	LogLevel string `toml:"log_level"` // debug | info | warn | error
	Nickname string `toml:"nickname"`  // overrides the mock profile nickname
	NoColor  bool   `toml:"no_color"`

	// DataDir holds the session marker. Not read from the file.
	DataDir string `toml:"-"`
}

func setDefaults(cfg *Config) {
	cfg.Theme = "classic"
	cfg.LogLevel = "info"
}

// DefaultDir is $TOGETHER_HOME or ~/.together.
func DefaultDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv(EnvHome)); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".together"), nil
}

// Load resolves configuration in priority order:
// 1. Defaults
// 2. Config file (path, else $TOGETHER_CONFIG, else <data dir>/config.toml)
// 3. Environment variables
// A missing config file is not an error; an explicitly named one is.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	cfg.DataDir = dir

	explicit := path != ""
	if !explicit {
		if v := os.Getenv(EnvConfig); v != "" {
			path, explicit = v, true
		} else {
			path = filepath.Join(dir, configFileName)
		}
	}
	if err := loadConfigFile(cfg, path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			err = nil
		}
		if err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	loadFromEnv(cfg)
	return cfg, nil
}

func loadConfigFile(cfg *Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvNickname); v != "" {
		cfg.Nickname = v
	}
	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.NoColor = true
	}
}

// Validate rejects values the rest of the app cannot use.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("invalid theme %q (want classic, neon or mono)", c.Theme)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return nil
}
