package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/statpick/internal/locale"
)

// Config holds user settings for statpick.
type Config struct {
	// Locale selects the language of questions and catalog text.
	// Values: "en", "es". Default: "en".
	Locale string `yaml:"locale"`

	Log LogConfig `yaml:"log"`
}

// LogConfig controls the structured log. The terminal UI owns stdout, so
// logs only go to a file.
type LogConfig struct {
	// File is the path of the JSON log. Empty disables logging.
	File string `yaml:"file"`

	// Level is one of debug, info, warn, error. Default: "info".
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Locale: string(locale.English),
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the config file at path on top of the defaults. A missing
// file is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from STATPICK_* environment variables.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("STATPICK_LOCALE"); v != "" {
		c.Locale = v
	}
	if v := getenv("STATPICK_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := getenv("STATPICK_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Validate checks that every field holds a supported value.
func (c Config) Validate() error {
	if _, err := locale.Parse(c.Locale); err != nil {
		return err
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q (use debug, info, warn or error)", c.Log.Level)
	}
	return nil
}

// LocaleTag returns the parsed locale, falling back to English.
func (c Config) LocaleTag() locale.Locale {
	l, err := locale.Parse(c.Locale)
	if err != nil {
		return locale.English
	}
	return l
}

// DefaultPath resolves the config file path in priority order:
// 1. STATPICK_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/statpick/config.yaml
// 3. ~/.config/statpick/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("STATPICK_CONFIG"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "statpick", "config.yaml"), nil
}
