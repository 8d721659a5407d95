package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"text-editor/internal/logger"
)

func envMap(m map[string]string) Getenv {
	return func(k string) string { return m[k] }
}

func TestDefaultsWithoutConfigFile(t *testing.T) {
	cfg, err := LoadWith(envMap(map[string]string{"HOME": t.TempDir()}))
	require.NoError(t, err)

	assert.Equal(t, 14, cfg.FontSize)
	assert.Equal(t, ClipboardApp, cfg.Clipboard)
	assert.Equal(t, PolicyLeading, cfg.StylePolicy)
	assert.Empty(t, cfg.Path)
}

func TestLoadTOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
font_family = "DejaVu Sans"
font_size = 18
dark_mode = true
clipboard = "system"
style_policy = "uniform"
font_dirs = ["/opt/fonts"]
`), 0o644))

	cfg, err := LoadWith(envMap(map[string]string{"TEXT_EDITOR_CONFIG": path}))
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, "DejaVu Sans", cfg.FontFamily)
	assert.Equal(t, 18, cfg.FontSize)
	assert.True(t, cfg.DarkMode)
	assert.Equal(t, ClipboardSystem, cfg.Clipboard)
	assert.Equal(t, PolicyUniform, cfg.StylePolicy)
	assert.Equal(t, []string{"/opt/fonts"}, cfg.FontDirs)
}

func TestXDGConfigHome(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "text-editor"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "text-editor", "config.toml"), []byte("font_size = 10\n"), 0o644))

	cfg, err := LoadWith(envMap(map[string]string{"XDG_CONFIG_HOME": dir}))
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.FontSize)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("font_size = 18\n"), 0o644))

	cfg, err := LoadWith(envMap(map[string]string{
		"TEXT_EDITOR_CONFIG":      path,
		"TEXT_EDITOR_FONT_SIZE":   "22",
		"TEXT_EDITOR_JSON_LOGS":   "true",
		"TEXT_EDITOR_LOG_LEVEL":   "warn",
		"TEXT_EDITOR_WATCH_FILES": "false",
	}))
	require.NoError(t, err)

	assert.Equal(t, 22, cfg.FontSize)
	assert.True(t, cfg.JSONLogs)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.WatchFiles)
}

func TestInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"odd font size", map[string]string{"TEXT_EDITOR_FONT_SIZE": "13"}},
		{"font size too large", map[string]string{"TEXT_EDITOR_FONT_SIZE": "32"}},
		{"non numeric size", map[string]string{"TEXT_EDITOR_FONT_SIZE": "big"}},
		{"bad bool", map[string]string{"TEXT_EDITOR_JSON_LOGS": "maybe"}},
		{"bad clipboard", map[string]string{"TEXT_EDITOR_CLIPBOARD": "x11"}},
		{"bad policy", map[string]string{"TEXT_EDITOR_STYLE_POLICY": "majority"}},
		{"bad log level", map[string]string{"TEXT_EDITOR_LOG_LEVEL": "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.env["HOME"] = t.TempDir()
			_, err := LoadWith(envMap(tt.env))
			assert.Error(t, err)
		})
	}
}

func TestMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("font_size = \"eighteen\"\n"), 0o644))

	_, err := LoadWith(envMap(map[string]string{"TEXT_EDITOR_CONFIG": path}))
	assert.Error(t, err)
}

func TestDebugConfig(t *testing.T) {
	cfg := Default()
	cfg.DebugAll = true
	dc := cfg.Debug()
	assert.Equal(t, logger.DebugLevel, dc.LogLevel)
	assert.True(t, dc.EnableFileTracking)

	cfg = Default()
	cfg.Production = true
	dc = cfg.Debug()
	assert.Equal(t, logger.ErrorLevel, dc.LogLevel)
	assert.True(t, dc.UseJSONLogging)
}
