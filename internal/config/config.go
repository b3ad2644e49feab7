// Package config provides YAML-based application configuration loading
// for the collide tool.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Config contains all settings read from config.yaml.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Runtime RuntimeConfig `yaml:"runtime"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
}

// LogConfig controls the shared logger.
type LogConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	Timestamps bool   `yaml:"timestamps"`
}

// RuntimeConfig controls the frame loop.
type RuntimeConfig struct {
	TickRate int    `yaml:"tick_rate"` // Frames per second
	Seed     uint64 `yaml:"seed"`      // Seed for behaviors that use randomness
	Width    int    `yaml:"width"`     // Viewer width when the terminal size is unknown
	Height   int    `yaml:"height"`
}

// StorageConfig locates the sqlite database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"` // Empty means ~/.collide/collide.db
}

// ServerConfig configures the SSH viewer.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// TickInterval returns the duration of one frame.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.TickRate)
}

// IdleTimeout returns the SSH idle timeout.
func (c ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}

// LogLevel parses the configured level.
func (c LogConfig) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Level)
	if err != nil {
		return log.WarnLevel, fmt.Errorf("config: log.level %q: %w", c.Level, err)
	}
	return lvl, nil
}

// Validate checks ranges that the rest of the program relies on.
func (c Config) Validate() error {
	if c.Runtime.TickRate < 1 || c.Runtime.TickRate > 240 {
		return fmt.Errorf("config: runtime.tick_rate %d out of range [1, 240]", c.Runtime.TickRate)
	}
	if c.Runtime.Width < 1 || c.Runtime.Height < 1 {
		return fmt.Errorf("config: runtime size %dx%d must be positive", c.Runtime.Width, c.Runtime.Height)
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: server.idle_timeout_minutes must not be negative")
	}
	if _, err := c.Log.LogLevel(); err != nil {
		return err
	}
	return nil
}
