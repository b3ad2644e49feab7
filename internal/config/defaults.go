package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// Default returns the hard-coded configuration.
// It matches defaults/config.yaml.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:      "warn",
			Timestamps: false,
		},
		Runtime: RuntimeConfig{
			TickRate: 30,
			Seed:     1,
			Width:    80,
			Height:   24,
		},
		Storage: StorageConfig{
			DBPath: "",
		},
		Server: ServerConfig{
			Address:            ":2323",
			HostKey:            ".ssh/collide_ed25519",
			IdleTimeoutMinutes: 30,
		},
	}
}
