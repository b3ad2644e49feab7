package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultConfigYAML, &cfg); err != nil {
		t.Fatalf("embedded config does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "runtime:\n  tick_rate: 60\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Runtime.TickRate != 60 {
		t.Errorf("tick_rate = %d, expected 60", cfg.Runtime.TickRate)
	}
	// Fields not in the file keep their defaults.
	if cfg.Runtime.Width != 80 || cfg.Server.Address != ":2323" {
		t.Errorf("partial file should keep defaults, got %+v", cfg)
	}
	if lvl, _ := cfg.Log.LogLevel(); lvl != log.DebugLevel {
		t.Errorf("level = %v, expected debug", lvl)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("runtime: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(bad)
	if err == nil || !strings.Contains(err.Error(), "bad.yaml") {
		t.Errorf("parse error should name the file, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"zero tick rate", func(c *Config) { c.Runtime.TickRate = 0 }, true},
		{"huge tick rate", func(c *Config) { c.Runtime.TickRate = 1000 }, true},
		{"zero width", func(c *Config) { c.Runtime.Width = 0 }, true},
		{"negative idle", func(c *Config) { c.Server.IdleTimeoutMinutes = -1 }, true},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestDurations(t *testing.T) {
	cfg := Default()
	if got := cfg.Runtime.TickInterval(); got != time.Second/30 {
		t.Errorf("TickInterval() = %v", got)
	}
	if got := cfg.Server.IdleTimeout(); got != 30*time.Minute {
		t.Errorf("IdleTimeout() = %v", got)
	}
}

func TestDBPath(t *testing.T) {
	cfg := Default()
	cfg.Storage.DBPath = "/tmp/x.db"
	if cfg.DBPath() != "/tmp/x.db" {
		t.Errorf("DBPath() = %s", cfg.DBPath())
	}

	cfg.Storage.DBPath = ""
	if !strings.HasSuffix(cfg.DBPath(), "collide.db") {
		t.Errorf("default DBPath() = %s", cfg.DBPath())
	}
}
