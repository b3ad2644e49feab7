package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-collide/internal/platform/tui"
	"github.com/vovakirdan/tui-collide/internal/scene"
)

// chromeRows are the terminal rows the viewer uses below the scene.
const chromeRows = 3

var viewCmd = &cobra.Command{
	Use:   "view <scene>",
	Short: "Watch a scene and probe it interactively",
	Long: `Run a scene in the terminal and probe it with a movable shape.
Entities the probe collides with are highlighted.

Controls:
  Arrow keys / WASD  Move the probe
  Tab                Cycle probe kind (rect, circle, line, point)
  Space / P          Pause / resume
  .                  Step one frame while paused
  ?                  Toggle help
  Q / Ctrl+C         Quit

Examples:
  collide view arena
  collide view gallery --fps 10`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func runView(cmd *cobra.Command, args []string) error {
	store := tryOpenStore()
	if store != nil {
		defer store.Close()
	}

	sc, err := loadScene(args[0], store)
	if err != nil {
		return err
	}
	r, err := sc.Build(scene.WithSeed(app.cfg.Runtime.Seed), scene.WithLogger(app.logger))
	if err != nil {
		return err
	}

	// Get terminal size, falling back to the configured size
	width, height := app.cfg.Runtime.Width, app.cfg.Runtime.Height
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	width = min(width, sc.Width)
	height = min(max(height-chromeRows, 1), sc.Height)

	return tui.Run(r, width, height, app.cfg.Runtime.TickInterval())
}
