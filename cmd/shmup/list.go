package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shmup/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available scenarios",
	Long:  `Shows the built-in scenarios and those defined in the tuning file.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	scenarios := registry.List()

	if len(scenarios) == 0 {
		fmt.Println("No scenarios available.")
		return
	}

	fmt.Println("Available scenarios:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range scenarios {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "ID", "Title", "Enemies")
	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "--", "-----", "-------")

	for _, s := range scenarios {
		enemies := "?"
		if sc, ok := shmupCfg.Scenario(s.ID); ok {
			n := 0
			for _, entry := range sc.Roster {
				n += entry.Count
			}
			enemies = fmt.Sprint(n)
		}
		fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, s.ID, s.Title, enemies)
	}

	fmt.Println()
	fmt.Println("Run 'shmup play <id>' to play a scenario.")
}
