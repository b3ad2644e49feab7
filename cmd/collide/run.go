package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-collide/internal/scene"
	"github.com/vovakirdan/tui-collide/internal/sim"
	"github.com/vovakirdan/tui-collide/internal/storage"
)

var (
	runFrames int
	runNoSave bool
)

var runCmd = &cobra.Command{
	Use:   "run <scene>",
	Short: "Run a scene headlessly and record stats",
	Long: `Run a scene for a number of frames without a terminal UI.
Each frame updates then renders every member of the room.

The run is recorded in the database unless --no-save is given.
Interrupting with Ctrl+C stops early and records what ran.

Examples:
  collide run arena --frames 600
  collide run ./my-scene.yaml --seed 42 --no-save`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&runFrames, "frames", 300, "Frames to run")
	runCmd.Flags().BoolVar(&runNoSave, "no-save", false, "Do not record the run")
}

func runRun(cmd *cobra.Command, args []string) error {
	if runFrames < 0 {
		return fmt.Errorf("--frames must not be negative, got %d", runFrames)
	}

	// Recording needs the database; a dry run only uses it for stored scenes.
	store := tryOpenStore()
	if store == nil && !runNoSave {
		return fmt.Errorf("cannot record run: database %s unavailable", app.cfg.DBPath())
	}
	if store != nil {
		defer store.Close()
	}

	sc, err := loadScene(args[0], store)
	if err != nil {
		return err
	}
	seed := app.cfg.Runtime.Seed
	r, err := sc.Build(scene.WithSeed(seed), scene.WithLogger(app.logger))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.logger.Info("running scene", "scene", sc.Name, "frames", runFrames, "seed", seed)
	stats, runErr := sim.NewRunner(r).Run(ctx, runFrames)

	fmt.Printf("Run - %s\n", sc.Name)
	fmt.Println()
	fmt.Printf("  %-9s %d\n", "Frames", stats.Frames)
	fmt.Printf("  %-9s %d\n", "Updates", stats.Updates)
	fmt.Printf("  %-9s %d\n", "Renders", stats.Renders)
	fmt.Printf("  %-9s %d\n", "Peak", stats.Peak)
	fmt.Printf("  %-9s %d\n", "Final", stats.Final)
	fmt.Printf("  %-9s %s\n", "Duration", stats.Duration)

	if runNoSave {
		return runErr
	}

	id, err := store.SaveRun(storage.Run{
		Scene:    sc.Name,
		Seed:     seed,
		Frames:   stats.Frames,
		Entities: stats.Final,
		Peak:     stats.Peak,
		Updates:  stats.Updates,
		Duration: stats.Duration,
	})
	if err != nil {
		return err
	}
	app.logger.Debug("run recorded", "id", id)

	if runErr != nil {
		fmt.Println()
		fmt.Println("Interrupted; partial run recorded.")
	}
	return nil
}
