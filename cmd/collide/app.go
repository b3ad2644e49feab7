package main

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-collide/internal/config"
	"github.com/vovakirdan/tui-collide/internal/scene"
	"github.com/vovakirdan/tui-collide/internal/storage"
)

// app holds what every command shares once flags are parsed.
var app struct {
	cfg    config.Config
	logger *log.Logger
}

// loadApp loads the config, applies flag overrides and builds the logger.
func loadApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Runtime.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Runtime.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Log.LogLevel()
	app.cfg = cfg
	app.logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: cfg.Log.Timestamps,
		Level:           level,
		Prefix:          "collide",
	})
	return nil
}

// openStore opens the configured database.
func openStore() (*storage.Store, error) {
	return storage.Open(app.cfg.DBPath())
}

// tryOpenStore opens the database, or logs and returns nil.
// Commands that only need it for stored scenes keep working without one.
func tryOpenStore() *storage.Store {
	store, err := openStore()
	if err != nil {
		app.logger.Warn("could not open database", "path", app.cfg.DBPath(), "error", err)
		return nil
	}
	return store
}

// loadScene resolves name as a built-in scene, then a stored scene, then a
// file path.
func loadScene(name string, store *storage.Store) (*scene.Scene, error) {
	if slices.Contains(scene.BuiltinNames(), name) {
		return scene.Builtin(name)
	}

	if store != nil {
		body, err := store.LoadScene(name)
		switch {
		case err == nil:
			return scene.Parse(body)
		case !errors.Is(err, storage.ErrNotFound):
			return nil, err
		}
	}

	if _, err := os.Stat(name); err == nil {
		return scene.LoadFile(name)
	}
	return nil, fmt.Errorf("unknown scene %q: not built in, not stored, not a file", name)
}
