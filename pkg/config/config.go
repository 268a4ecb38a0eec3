package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Default values applied before anything dispatches. Every wait in the
// system derives its deadline from PageTimeoutMS.
const (
	DefaultPageTimeoutMS      = 30000
	DefaultPollIntervalMS     = 100
	DefaultBoundsOffset       = 25
	DefaultWindowWidth        = 1440
	DefaultWindowHeight       = 900
	DefaultScreenshotMaxWidth = 1440
)

// Config holds the runtime configuration for the automation core.
// Values come from defaults, then the YAML config file, then SABLE_*
// environment variables, in increasing precedence.
type Config struct {
	// PageTimeoutMS bounds page-load and selector waits, in milliseconds.
	PageTimeoutMS int `yaml:"page_timeout_ms"`

	// PollIntervalMS is the sampling interval for all polling loops.
	PollIntervalMS int `yaml:"poll_interval_ms"`

	// BoundsOffset is the top-left screen offset of the managed window.
	BoundsOffset int `yaml:"bounds_offset"`

	// WindowWidth and WindowHeight size the managed window.
	WindowWidth  int `yaml:"window_width"`
	WindowHeight int `yaml:"window_height"`

	// ScreenshotMaxWidth caps screenshot width; wider captures are scaled
	// down before being returned.
	ScreenshotMaxWidth int `yaml:"screenshot_max_width"`

	// AllowedHosts restricts navigation targets. Glob patterns match
	// against the URL host; an empty list allows every host.
	AllowedHosts []string `yaml:"allowed_hosts"`

	hostGlobs []glob.Glob
}

// Default returns a Config with all defaults resolved.
func Default() *Config {
	return &Config{
		PageTimeoutMS:      DefaultPageTimeoutMS,
		PollIntervalMS:     DefaultPollIntervalMS,
		BoundsOffset:       DefaultBoundsOffset,
		WindowWidth:        DefaultWindowWidth,
		WindowHeight:       DefaultWindowHeight,
		ScreenshotMaxWidth: DefaultScreenshotMaxWidth,
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "sable", "config.yaml"), nil
}

// Load reads the config file at path, applies environment overrides, and
// resolves defaults. A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.fillDefaults()

	if err := cfg.compileHosts(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	overrideInt := func(key string, dst *int) {
		if v := os.Getenv(key); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}
	overrideInt("SABLE_PAGE_TIMEOUT_MS", &c.PageTimeoutMS)
	overrideInt("SABLE_POLL_INTERVAL_MS", &c.PollIntervalMS)
	overrideInt("SABLE_BOUNDS_OFFSET", &c.BoundsOffset)
	overrideInt("SABLE_WINDOW_WIDTH", &c.WindowWidth)
	overrideInt("SABLE_WINDOW_HEIGHT", &c.WindowHeight)
	overrideInt("SABLE_SCREENSHOT_MAX_WIDTH", &c.ScreenshotMaxWidth)
}

// fillDefaults repairs zero or negative values left by a partial config
// file, so every consumer sees a usable setting.
func (c *Config) fillDefaults() {
	if c.PageTimeoutMS <= 0 {
		c.PageTimeoutMS = DefaultPageTimeoutMS
	}
	if c.PollIntervalMS <= 0 {
		c.PollIntervalMS = DefaultPollIntervalMS
	}
	if c.BoundsOffset < 0 {
		c.BoundsOffset = DefaultBoundsOffset
	}
	if c.WindowWidth <= 0 {
		c.WindowWidth = DefaultWindowWidth
	}
	if c.WindowHeight <= 0 {
		c.WindowHeight = DefaultWindowHeight
	}
	if c.ScreenshotMaxWidth <= 0 {
		c.ScreenshotMaxWidth = DefaultScreenshotMaxWidth
	}
}

func (c *Config) compileHosts() error {
	c.hostGlobs = c.hostGlobs[:0]
	for _, pattern := range c.AllowedHosts {
		g, err := glob.Compile(pattern)
		if err != nil {
			return fmt.Errorf("invalid allowed_hosts pattern %q: %w", pattern, err)
		}
		c.hostGlobs = append(c.hostGlobs, g)
	}
	return nil
}

// SetAllowedHosts replaces the allowlist and recompiles its patterns.
func (c *Config) SetAllowedHosts(patterns []string) error {
	c.AllowedHosts = patterns
	return c.compileHosts()
}

// HostAllowed reports whether navigation to the given host is permitted.
// An empty allowlist permits everything.
func (c *Config) HostAllowed(host string) bool {
	if len(c.hostGlobs) == 0 {
		return true
	}
	for _, g := range c.hostGlobs {
		if g.Match(host) {
			return true
		}
	}
	return false
}

// PageTimeout returns the shared wait timeout as a duration.
func (c *Config) PageTimeout() time.Duration {
	return time.Duration(c.PageTimeoutMS) * time.Millisecond
}

// PollInterval returns the polling interval as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}
