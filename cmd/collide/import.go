package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-collide/internal/scene"
)

var importName string

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Validate and store a scene file",
	Long: `Validate a YAML scene file and store it in the database under its name,
replacing any stored scene of the same name.

Examples:
  collide import ./maze.yaml
  collide import ./maze.yaml --name maze-v2`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importName, "name", "", "Store under this name instead of the file's")
}

func runImport(cmd *cobra.Command, args []string) error {
	body, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading scene: %w", err)
	}
	sc, err := scene.Parse(body)
	if err != nil {
		return err
	}

	if importName != "" && importName != sc.Name {
		sc.Name = importName
		if body, err = sc.Marshal(); err != nil {
			return err
		}
	}
	if slices.Contains(scene.BuiltinNames(), sc.Name) {
		return fmt.Errorf("scene %q would be shadowed by the built-in scene; use --name", sc.Name)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SaveScene(sc.Name, body); err != nil {
		return err
	}
	fmt.Printf("Stored scene %s (%d entities)\n", sc.Name, len(sc.Entities))
	return nil
}
