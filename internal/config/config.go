package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete tmux-peacock configuration
type Config struct {
	Git     GitConfig     `mapstructure:"git"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Lock    LockConfig    `mapstructure:"lock"`
	Style   StyleConfig   `mapstructure:"style"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// GitConfig controls git subprocess behavior
type GitConfig struct {
	// TimeoutSeconds bounds every git query; expiry degrades to "not a repository"
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// Timeout returns the git subprocess timeout as a time.Duration
func (g *GitConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// CacheConfig controls the persisted color cache
type CacheConfig struct {
	// Path is the cache file location. Supports ~ for home directory expansion.
	Path string `mapstructure:"path"`
	// MaxSizeBytes rejects cache files larger than this on read
	MaxSizeBytes int64 `mapstructure:"max_size_bytes"`
}

// ResolvePath returns the cache path with ~ expanded
func (c *CacheConfig) ResolvePath() string {
	return expandHome(c.Path)
}

// LockConfig controls the cross-process sync lock
type LockConfig struct {
	// Path is the lock file location
	Path string `mapstructure:"path"`
}

// StyleConfig controls the derived tmux style factors
type StyleConfig struct {
	// MuteInactive scales the base color for inactive pane borders (0..1)
	MuteInactive float64 `mapstructure:"mute_inactive"`
	// MuteActive scales the base color for the active pane border (0..1)
	MuteActive float64 `mapstructure:"mute_active"`
	// BackgroundTint blends the base color into the window background (0..1, keep small)
	BackgroundTint float64 `mapstructure:"background_tint"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is written at all (default: false)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Git: GitConfig{
			TimeoutSeconds: 5,
		},
		Cache: CacheConfig{
			Path:         "~/.config/tmux-peacock-colors.json",
			MaxSizeBytes: 1 << 20, // 1MB
		},
		Lock: LockConfig{
			Path: filepath.Join(os.TempDir(), "tmux-peacock-sync.lock"),
		},
		Style: StyleConfig{
			MuteInactive:   0.6,
			MuteActive:     0.8,
			BackgroundTint: 0.08,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("git.timeout_seconds", defaults.Git.TimeoutSeconds)

	viper.SetDefault("cache.path", defaults.Cache.Path)
	viper.SetDefault("cache.max_size_bytes", defaults.Cache.MaxSizeBytes)

	viper.SetDefault("lock.path", defaults.Lock.Path)

	viper.SetDefault("style.mute_inactive", defaults.Style.MuteInactive)
	viper.SetDefault("style.mute_active", defaults.Style.MuteActive)
	viper.SetDefault("style.background_tint", defaults.Style.BackgroundTint)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// Validate checks configuration values for consistency
func (c *Config) Validate() error {
	if c.Git.TimeoutSeconds <= 0 {
		return fmt.Errorf("git.timeout_seconds must be positive, got %d", c.Git.TimeoutSeconds)
	}
	if c.Cache.Path == "" {
		return fmt.Errorf("cache.path must not be empty")
	}
	if c.Lock.Path == "" {
		return fmt.Errorf("lock.path must not be empty")
	}
	for name, factor := range map[string]float64{
		"style.mute_inactive":   c.Style.MuteInactive,
		"style.mute_active":     c.Style.MuteActive,
		"style.background_tint": c.Style.BackgroundTint,
	} {
		if factor < 0 || factor > 1 {
			return fmt.Errorf("%s must be between 0 and 1, got %v", name, factor)
		}
	}
	return nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tmux-peacock")
	}
	// Fall back to ~/.config/tmux-peacock
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tmux-peacock"
	}
	return filepath.Join(home, ".config", "tmux-peacock")
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
