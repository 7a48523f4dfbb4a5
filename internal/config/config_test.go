package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Git.TimeoutSeconds != 5 {
		t.Errorf("Git.TimeoutSeconds = %d, want 5", cfg.Git.TimeoutSeconds)
	}
	if cfg.Cache.Path != "~/.config/tmux-peacock-colors.json" {
		t.Errorf("Cache.Path = %q, want default cache path", cfg.Cache.Path)
	}
	if cfg.Cache.MaxSizeBytes != 1<<20 {
		t.Errorf("Cache.MaxSizeBytes = %d, want 1MB", cfg.Cache.MaxSizeBytes)
	}
	if !strings.HasSuffix(cfg.Lock.Path, "tmux-peacock-sync.lock") {
		t.Errorf("Lock.Path = %q, want temp-dir lock file", cfg.Lock.Path)
	}
	if cfg.Style.MuteInactive != 0.6 || cfg.Style.MuteActive != 0.8 {
		t.Errorf("mute factors = (%v, %v), want (0.6, 0.8)", cfg.Style.MuteInactive, cfg.Style.MuteActive)
	}
	if cfg.Style.BackgroundTint != 0.08 {
		t.Errorf("Style.BackgroundTint = %v, want 0.08", cfg.Style.BackgroundTint)
	}
	if cfg.Logging.Enabled {
		t.Error("Logging.Enabled = true, want false by default")
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero timeout", func(c *Config) { c.Git.TimeoutSeconds = 0 }},
		{"negative timeout", func(c *Config) { c.Git.TimeoutSeconds = -1 }},
		{"empty cache path", func(c *Config) { c.Cache.Path = "" }},
		{"empty lock path", func(c *Config) { c.Lock.Path = "" }},
		{"mute factor above one", func(c *Config) { c.Style.MuteActive = 1.5 }},
		{"negative tint", func(c *Config) { c.Style.BackgroundTint = -0.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestResolvePathExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	c := CacheConfig{Path: "~/.config/tmux-peacock-colors.json"}
	got := c.ResolvePath()
	want := filepath.Join(home, ".config", "tmux-peacock-colors.json")
	if got != want {
		t.Errorf("ResolvePath() = %q, want %q", got, want)
	}
}

func TestResolvePathLeavesAbsolutePaths(t *testing.T) {
	c := CacheConfig{Path: "/var/cache/colors.json"}
	if got := c.ResolvePath(); got != "/var/cache/colors.json" {
		t.Errorf("ResolvePath() = %q, want unchanged absolute path", got)
	}
}

func TestConfigDirRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/xdg")
	if got := ConfigDir(); got != "/custom/xdg/tmux-peacock" {
		t.Errorf("ConfigDir() = %q, want %q", got, "/custom/xdg/tmux-peacock")
	}
}

func TestGitTimeout(t *testing.T) {
	g := GitConfig{TimeoutSeconds: 5}
	if got := g.Timeout().Seconds(); got != 5 {
		t.Errorf("Timeout() = %vs, want 5s", got)
	}
}
