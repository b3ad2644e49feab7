// collide is a geometric collision engine with a terminal scene viewer.
//
// Usage:
//
//	collide check <shapeA> <shapeB>   - Test two shapes against each other
//	collide query <scene> <shape>     - Query a scene's room with a shape
//	collide run <scene>               - Run a scene headlessly and record stats
//	collide view <scene>              - Watch a scene and probe it interactively
//	collide scenes                    - List built-in and stored scenes
//	collide import <file>             - Validate and store a scene file
//	collide history [scene]           - Browse recorded runs
//	collide behaviors                 - List entity behaviors
//	collide serve [scene]             - Serve the viewer over SSH
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.collide/config.yaml)
//	--fps <rate>        - Override runtime.tick_rate
//	--seed <value>      - Override runtime.seed
//	--db <path>         - Override storage.db_path
//	--log-level <lvl>   - Override log.level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import behaviors to register them
	_ "github.com/vovakirdan/tui-collide/internal/behavior"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     uint64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "collide",
	Short: "Collide - shape collision engine and scene viewer",
	Long: `Collide tests rectangles, circles, line segments and points against
each other, and runs scenes of live entities that query their room every frame.

Shapes are written in compact form:
  rect:x,y,w,h   circle:x,y,r   line:x1,y1,x2,y2   point:x,y

Examples:
  collide check rect:0,0,10,10 circle:5,5,2
  collide query arena point:12,7
  collide run arena --frames 600
  collide view gallery
  collide serve arena`,
	SilenceUsage:      true,
	PersistentPreRunE: loadApp,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "Seed for behaviors that use randomness")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the scene and run database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(scenesCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(behaviorsCmd)
	rootCmd.AddCommand(serveCmd)
}
