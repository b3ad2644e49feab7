package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-collide/internal/registry"
)

var behaviorsCmd = &cobra.Command{
	Use:   "behaviors",
	Short: "List entity behaviors",
	Long:  `Shows the behaviors a scene entity can name in its "behavior" field.`,
	Run:   runBehaviors,
}

func runBehaviors(cmd *cobra.Command, args []string) {
	behaviors := registry.List()

	if len(behaviors) == 0 {
		fmt.Println("No behaviors registered.")
		return
	}

	fmt.Println("Available behaviors:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, b := range behaviors {
		maxNameLen = max(maxNameLen, len(b.Name))
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, b := range behaviors {
		fmt.Printf("  %-*s  %s\n", maxNameLen, b.Name, b.Description)
	}
}
