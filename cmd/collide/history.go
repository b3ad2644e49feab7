package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-collide/internal/platform/tui"
)

var (
	historyPlain bool
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history [scene]",
	Short: "Browse recorded runs",
	Long: `Browse runs recorded by 'collide run', grouped by scene.

In a terminal this opens an interactive browser. With --plain, or when
output is not a terminal, the most recent runs are printed as a table.

Examples:
  collide history
  collide history arena --plain --limit 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&historyPlain, "plain", false, "Print a table instead of the browser")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Runs to print with --plain")
}

func runHistory(cmd *cobra.Command, args []string) error {
	var sceneName string
	if len(args) == 1 {
		sceneName = args[0]
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if !historyPlain && term.IsTerminal(fd) {
		width, height := app.cfg.Runtime.Width, app.cfg.Runtime.Height
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		return tui.RunHistory(store, sceneName, width, height)
	}

	runs, err := store.RecentRuns(sceneName, historyLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'collide run <scene>' to record one.")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-5s  %-5s  %-9s  %s\n",
		"ID", "Scene", "Seed", "Frames", "Peak", "Final", "Duration", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-5s  %-5s  %-9s  %s\n",
		"--", "-----", "----", "------", "----", "-----", "--------", "----")

	for _, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-8d  %-6d  %-5d  %-5d  %-9s  %s\n",
			r.ID, r.Scene, r.Seed, r.Frames, r.Peak, r.Entities, r.Duration, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
