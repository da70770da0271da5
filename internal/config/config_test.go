package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/statpick/internal/locale"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	p := writeFile(t, "locale: es\nlog:\n  file: /tmp/statpick.log\n")
	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, "es", cfg.Locale)
	assert.Equal(t, "/tmp/statpick.log", cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level, "unset fields keep defaults")
	assert.Equal(t, locale.Spanish, cfg.LocaleTag())
}

func TestLoad_BadYAML(t *testing.T) {
	p := writeFile(t, "locale: [es\n")
	_, err := Load(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoad_UnknownKey(t *testing.T) {
	p := writeFile(t, "locle: es\n")
	_, err := Load(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locle")
}

func TestLoad_EmptyFile(t *testing.T) {
	p := writeFile(t, "")
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"STATPICK_LOCALE":    "es_ES.UTF-8",
		"STATPICK_LOG_LEVEL": "debug",
	}
	cfg := DefaultConfig()
	cfg.Log.File = "keep.log"
	cfg.ApplyEnv(func(k string) string { return env[k] })

	assert.Equal(t, "es_ES.UTF-8", cfg.Locale)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "keep.log", cfg.Log.File)
	assert.Equal(t, locale.Spanish, cfg.LocaleTag())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"spanish", func(c *Config) { c.Locale = "es" }, false},
		{"unknown locale", func(c *Config) { c.Locale = "de" }, true},
		{"unknown level", func(c *Config) { c.Log.Level = "verbose" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("STATPICK_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "statpick", "config.yaml"), p)

	t.Setenv("STATPICK_CONFIG", "/etc/statpick.yaml")
	p, err = DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/statpick.yaml", p)
}
