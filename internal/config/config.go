package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"text-editor/internal/debug"
	"text-editor/internal/logger"
	"text-editor/internal/models"
)

const (
	ClipboardApp    = "app"
	ClipboardSystem = "system"

	PolicyLeading = "leading"
	PolicyUniform = "uniform"
)

// Config is the editor's start-up configuration. Values are read from
// defaults, then the TOML file, then TEXT_EDITOR_* environment variables.
type Config struct {
	LogLevel    string `toml:"log_level"`
	JSONLogs    bool   `toml:"json_logs"`
	DebugAll    bool   `toml:"debug_all"`
	Production  bool   `toml:"production"`
	FileTracing bool   `toml:"file_tracing"`

	FontFamily string `toml:"font_family"`
	FontSize   int    `toml:"font_size"`
	DarkMode   bool   `toml:"dark_mode"`

	WindowWidth  float32 `toml:"window_width"`
	WindowHeight float32 `toml:"window_height"`

	Clipboard   string   `toml:"clipboard"`
	StylePolicy string   `toml:"style_policy"`
	WatchFiles  bool     `toml:"watch_files"`
	FontDirs    []string `toml:"font_dirs"`

	// Path is the file the configuration was read from, empty when none was found.
	Path string `toml:"-"`
}

func Default() Config {
	return Config{
		LogLevel:     "info",
		FontFamily:   "",
		FontSize:     14,
		WindowWidth:  800,
		WindowHeight: 600,
		Clipboard:    ClipboardApp,
		StylePolicy:  PolicyLeading,
		WatchFiles:   true,
	}
}

// Getenv matches os.Getenv; tests pass a map-backed lookup.
type Getenv func(string) string

// Load builds the configuration from the process environment.
func Load() (Config, error) {
	return LoadWith(os.Getenv)
}

func LoadWith(getenv Getenv) (Config, error) {
	cfg := Default()

	path := configPath(getenv)
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return cfg, fmt.Errorf("read config %s: %w", path, err)
			}
		} else {
			cfg.Path = path
		}
	}

	if err := cfg.applyEnv(getenv); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func configPath(getenv Getenv) string {
	if p := getenv("TEXT_EDITOR_CONFIG"); p != "" {
		return p
	}
	if dir := getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "text-editor", "config.toml")
	}
	if home := getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", "text-editor", "config.toml")
	}
	return ""
}

func (c *Config) applyEnv(getenv Getenv) error {
	if v := getenv("TEXT_EDITOR_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if getenv("DEBUG") == "1" {
		c.LogLevel = "debug"
	}

	boolVars := []struct {
		name string
		dst  *bool
	}{
		{"TEXT_EDITOR_JSON_LOGS", &c.JSONLogs},
		{"TEXT_EDITOR_DEBUG_ALL", &c.DebugAll},
		{"TEXT_EDITOR_PRODUCTION", &c.Production},
		{"TEXT_EDITOR_DEBUG_FILES", &c.FileTracing},
		{"TEXT_EDITOR_DARK_MODE", &c.DarkMode},
		{"TEXT_EDITOR_WATCH_FILES", &c.WatchFiles},
	}
	for _, bv := range boolVars {
		raw := getenv(bv.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", bv.name, err)
		}
		*bv.dst = v
	}

	if v := getenv("TEXT_EDITOR_FONT_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TEXT_EDITOR_FONT_SIZE: %w", err)
		}
		c.FontSize = size
	}
	if v := getenv("TEXT_EDITOR_FONT"); v != "" {
		c.FontFamily = v
	}
	if v := getenv("TEXT_EDITOR_CLIPBOARD"); v != "" {
		c.Clipboard = strings.ToLower(v)
	}
	if v := getenv("TEXT_EDITOR_STYLE_POLICY"); v != "" {
		c.StylePolicy = strings.ToLower(v)
	}
	return nil
}

// Validate rejects values the editor cannot honour.
func (c Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if !models.ValidFontSize(c.FontSize) {
		return fmt.Errorf("font_size %d: must be an even number between %d and %d", c.FontSize, models.MinFontSize, models.MaxFontSize)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size %.0fx%.0f: must be positive", c.WindowWidth, c.WindowHeight)
	}
	switch c.Clipboard {
	case ClipboardApp, ClipboardSystem:
	default:
		return fmt.Errorf("clipboard %q: must be %q or %q", c.Clipboard, ClipboardApp, ClipboardSystem)
	}
	switch c.StylePolicy {
	case PolicyLeading, PolicyUniform:
	default:
		return fmt.Errorf("style_policy %q: must be %q or %q", c.StylePolicy, PolicyLeading, PolicyUniform)
	}
	return nil
}

// Debug derives the debug coordinator configuration.
func (c Config) Debug() debug.Config {
	var dc debug.Config
	switch {
	case c.Production:
		dc = debug.ProductionConfig()
	default:
		dc = debug.DefaultConfig()
		dc.EnableFileTracking = c.FileTracing || c.DebugAll
	}

	level, _ := logger.ParseLevel(c.LogLevel)
	if c.DebugAll {
		level = logger.DebugLevel
	}
	if !c.Production {
		dc.LogLevel = level
	}
	if c.JSONLogs {
		dc.UseJSONLogging = true
	}
	return dc
}
