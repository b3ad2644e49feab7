package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-collide/internal/scene"
)

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "List built-in and stored scenes",
	Long: `Shows the scenes that can be passed by name to view, run, query and serve.
Built-in scenes ship with collide; stored scenes were added with import.`,
	Args: cobra.NoArgs,
	RunE: runScenes,
}

var scenesRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a stored scene",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenesRm,
}

func init() {
	scenesCmd.AddCommand(scenesRmCmd)
}

func runScenes(cmd *cobra.Command, args []string) error {
	fmt.Println("Built-in scenes:")
	fmt.Println()
	for _, name := range scene.BuiltinNames() {
		sc, err := scene.Builtin(name)
		if err != nil {
			return err
		}
		fmt.Printf("  %-12s %3dx%-3d  %s\n", sc.Name, sc.Width, sc.Height, sc.Description)
	}
	fmt.Println()

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	stored, err := store.ListScenes()
	if err != nil {
		return err
	}

	if len(stored) == 0 {
		fmt.Println("No stored scenes. Run 'collide import <file>' to add one.")
		return nil
	}

	fmt.Println("Stored scenes:")
	fmt.Println()
	for _, entry := range stored {
		fmt.Printf("  %-12s updated %s\n", entry.Name, entry.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runScenesRm(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteScene(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted scene %s\n", args[0])
	return nil
}
