// Package config loads editor settings from a TOML file, a .env file and
// TAGGER_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/OpticalFlyer/tagger/selector"
)

const (
	EnvMode    = "TAGGER_MODE"
	EnvTag     = "TAGGER_TAG"
	EnvDebug   = "TAGGER_DEBUG"
	EnvLogFile = "TAGGER_LOG_FILE"
)

var (
	ErrInvalidMode   = errors.New("invalid selection mode")
	ErrInvalidWindow = errors.New("invalid window size")
)

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type Selector struct {
	Mode                 string  `toml:"mode"`
	PolygonCloseDistance float64 `toml:"polygon_close_distance"`
}

type Editor struct {
	DefaultTag      string `toml:"default_tag"`
	Debug           bool   `toml:"debug"`
	WatchDebounceMs int    `toml:"watch_debounce_ms"`
}

type Config struct {
	Window   Window   `toml:"window"`
	Selector Selector `toml:"selector"`
	Editor   Editor   `toml:"editor"`
	LogFile  string   `toml:"log_file"`
}

// LoadOptions overrides where settings are read from. Empty fields use the
// defaults: the user config dir and .env in the working directory.
type LoadOptions struct {
	ConfigPath string
	EnvPath    string
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Window: Window{Width: 800, Height: 600, Title: "Tagger"},
		Selector: Selector{
			Mode:                 selector.ModeRect.String(),
			PolygonCloseDistance: selector.DefaultCloseDistance,
		},
		Editor: Editor{DefaultTag: "object", WatchDebounceMs: 200},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/tagger/config.toml or the platform
// equivalent
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tagger", "config.toml")
}

func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{})
}

func LoadWithOptions(opts LoadOptions) (*Config, error) {
	cfg := Default()

	path, explicit := opts.ConfigPath, opts.ConfigPath != ""
	if !explicit {
		path = DefaultPath()
	}
	if err := cfg.readFile(path, explicit); err != nil {
		return nil, err
	}

	envPath := opts.EnvPath
	if envPath == "" {
		envPath = ".env"
	}
	if _, err := os.Stat(envPath); err == nil {
		// existing environment variables win over the file
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", envPath, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string, required bool) error {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvMode)); v != "" {
		c.Selector.Mode = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTag)); v != "" {
		c.Editor.DefaultTag = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDebug)); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvDebug, v, err)
		}
		c.Editor.Debug = debug
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		c.LogFile = v
	}
	return nil
}

// Validate checks values that cannot be used as given
func (c *Config) Validate() error {
	if _, err := c.Mode(); err != nil {
		return err
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%dx%d: %w", c.Window.Width, c.Window.Height, ErrInvalidWindow)
	}
	if c.Selector.PolygonCloseDistance < 0 {
		return fmt.Errorf("polygon_close_distance %g must not be negative", c.Selector.PolygonCloseDistance)
	}
	return nil
}

// Mode returns the configured initial selection mode
func (c *Config) Mode() (selector.Mode, error) {
	mode, err := selector.ParseMode(c.Selector.Mode)
	if err != nil {
		return selector.ModeNone, fmt.Errorf("%w: %v", ErrInvalidMode, err)
	}
	return mode, nil
}

// WatchDebounce returns the delay before a file change is reported
func (c *Config) WatchDebounce() time.Duration {
	if c.Editor.WatchDebounceMs <= 0 {
		return 0
	}
	return time.Duration(c.Editor.WatchDebounceMs) * time.Millisecond
}

// SetupLogging sends the standard logger to LogFile when set. The returned
// closer releases the file.
func (c *Config) SetupLogging() (io.Closer, error) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if c.LogFile == "" {
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}
