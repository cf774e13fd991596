package config

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/richnote/internal/palette"
	"github.com/dshills/richnote/internal/style"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "RICHNOTE_"

// Config holds all richnote settings.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	Theme   ThemeConfig   `toml:"theme"`
	Logging LoggingConfig `toml:"logging"`
	Palette PaletteConfig `toml:"palette"`
}

// EditorConfig holds note editing settings.
type EditorConfig struct {
	// DefaultSize is the size token applied to new notes
	// ("small", "normal", "large", "huge").
	DefaultSize string `toml:"default_size"`

	// FontFamily is the font family for rendered text.
	FontFamily string `toml:"font_family"`

	// AutoFormat controls typing-time formatting.
	AutoFormat AutoFormatConfig `toml:"autoformat"`
}

// AutoFormatConfig controls typing-time formatting behavior.
type AutoFormatConfig struct {
	// NumberedLists continues "N. " prefixes across line breaks and
	// renumbers the lines below.
	NumberedLists bool `toml:"numbered_lists"`

	// Bullets continues bullet prefixes across line breaks.
	Bullets bool `toml:"bullets"`

	// Checkboxes converts bracket tokens into checkbox markers.
	Checkboxes bool `toml:"checkboxes"`
}

// ThemeConfig selects the color theme.
type ThemeConfig struct {
	// Name selects the built-in theme ("light" or "dark").
	Name string `toml:"name"`

	// Background optionally overrides the theme background color
	// (8 hex digits, RRGGBBAA).
	Background string `toml:"background"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	Level string `toml:"level"`
}

// PaletteConfig extends the fixed color palette.
type PaletteConfig struct {
	// Tolerance is the per-channel tolerance when matching concrete
	// colors back to palette entries. Zero keeps the built-in default.
	Tolerance float64 `toml:"tolerance"`

	// Colors adds custom palette entries: name to 8 hex digits (RRGGBBAA).
	Colors map[string]string `toml:"colors"`
}

// Default returns the default configuration values.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			DefaultSize: style.SizeNormal.String(),
			FontFamily:  style.DefaultFamily,
			AutoFormat: AutoFormatConfig{
				NumberedLists: true,
				Bullets:       true,
				Checkboxes:    true,
			},
		},
		Theme:   ThemeConfig{Name: "light"},
		Logging: LoggingConfig{Level: "info"},
		Palette: PaletteConfig{Tolerance: palette.Tolerance},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "richnote", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "richnote", "config.toml")
}

// Load reads the config file at path, applies RICHNOTE_* environment
// overrides, and validates the result. A missing file is not an error;
// defaults apply. An empty path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile merges the TOML file at path over the current values.
func (c *Config) loadFile(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, not an error
			return nil
		}
		return &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return nil
}

// applyEnv overlays RICHNOTE_* environment variables.
func (c *Config) applyEnv() {
	if v, ok := lookupEnv("THEME"); ok {
		c.Theme.Name = v
	}
	if v, ok := lookupEnv("THEME_BACKGROUND"); ok {
		c.Theme.Background = v
	}
	if v, ok := lookupEnv("LOG_LEVEL"); ok {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv("DEFAULT_SIZE"); ok {
		c.Editor.DefaultSize = v
	}
	if v, ok := lookupEnv("FONT_FAMILY"); ok {
		c.Editor.FontFamily = v
	}
	if v, ok := lookupEnvBool("NUMBERED_LISTS"); ok {
		c.Editor.AutoFormat.NumberedLists = v
	}
	if v, ok := lookupEnvBool("BULLETS"); ok {
		c.Editor.AutoFormat.Bullets = v
	}
	if v, ok := lookupEnvBool("CHECKBOXES"); ok {
		c.Editor.AutoFormat.Checkboxes = v
	}
	if v, ok := lookupEnvFloat("PALETTE_TOLERANCE"); ok {
		c.Palette.Tolerance = v
	}
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func lookupEnvBool(key string) (bool, bool) {
	v, ok := lookupEnv(key)
	if !ok {
		return false, false
	}
	return parseBool(v)
}

func lookupEnvFloat(key string) (float64, bool) {
	v, ok := lookupEnv(key)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// parseBool accepts the common truthy and falsy spellings.
func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	}
	return false, false
}

// Validate checks all settings and returns a ValidationError for the
// first invalid one.
func (c *Config) Validate() error {
	switch c.Theme.Name {
	case "light", "dark":
	default:
		return &ValidationError{Path: "theme.name", Message: `must be "light" or "dark"`, Value: c.Theme.Name}
	}
	if c.Theme.Background != "" {
		if _, err := palette.ParseHex8(c.Theme.Background); err != nil {
			return &ValidationError{Path: "theme.background", Message: "must be 8 hex digits (RRGGBBAA)", Value: c.Theme.Background}
		}
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{Path: "logging.level", Message: `must be "debug", "info", "warn", or "error"`, Value: c.Logging.Level}
	}
	if style.ParseFontSize(c.Editor.DefaultSize) == style.SizeUnset {
		return &ValidationError{Path: "editor.default_size", Message: "unknown size token", Value: c.Editor.DefaultSize}
	}
	if c.Palette.Tolerance < 0 || c.Palette.Tolerance > 0.5 {
		return &ValidationError{Path: "palette.tolerance", Message: "must be between 0 and 0.5", Value: c.Palette.Tolerance}
	}
	if _, err := c.BuildRegistry(); err != nil {
		return err
	}
	return nil
}

// Size returns the configured default size token. Unknown tokens fall
// back to normal; Validate rejects them at load time.
func (e EditorConfig) Size() style.FontSize {
	if s := style.ParseFontSize(e.DefaultSize); s != style.SizeUnset {
		return s
	}
	return style.SizeNormal
}

// BuildTheme constructs the theme the configuration selects.
func (c *Config) BuildTheme() *palette.Theme {
	if c.Theme.Background != "" {
		if bg, err := palette.ParseHex8(c.Theme.Background); err == nil {
			return palette.ThemeForBackground(c.Theme.Name, bg)
		}
	}
	if c.Theme.Name == "dark" {
		return palette.DefaultDark()
	}
	return palette.DefaultLight()
}

// BuildRegistry constructs the palette registry with any custom entries.
// Registration order is sorted by name so identity matching is stable
// across runs.
func (c *Config) BuildRegistry() (*palette.Registry, error) {
	var opts []palette.RegistryOption
	if c.Palette.Tolerance > 0 {
		opts = append(opts, palette.WithTolerance(c.Palette.Tolerance))
	}
	reg := palette.NewRegistry(opts...)

	names := make([]string, 0, len(c.Palette.Colors))
	for name := range c.Palette.Colors {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		col, err := palette.ParseHex8(c.Palette.Colors[name])
		if err != nil {
			return nil, &ValidationError{Path: "palette.colors." + name, Message: "must be 8 hex digits (RRGGBBAA)", Value: c.Palette.Colors[name]}
		}
		if err := reg.Register(name, col); err != nil {
			return nil, &ValidationError{Path: "palette.colors." + name, Message: err.Error(), Value: name}
		}
	}
	return reg, nil
}

// BuildEnv assembles the styling environment the configuration describes:
// font provider, registry with custom entries, and theme.
func (c *Config) BuildEnv() (*style.Env, error) {
	reg, err := c.BuildRegistry()
	if err != nil {
		return nil, err
	}
	return &style.Env{
		Fonts:    style.NewProvider(c.Editor.FontFamily),
		Registry: reg,
		Theme:    c.BuildTheme(),
	}, nil
}
