package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-onet/internal/games/onet"
	"github.com/vovakirdan/tui-onet/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes and campaign levels",
	Long:  `Shows the registered game modes and the built-in campaign levels.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	fmt.Println("Game modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Campaign levels:")
	fmt.Println()
	for i := range onet.LevelCount() {
		lvl := onet.GetLevel(i)
		fmt.Printf("  %2d. %-14s %2dx%-2d  %d kinds\n", i+1, lvl.Name, lvl.Columns, lvl.Rows, lvl.Kinds)
	}

	fmt.Println()
	fmt.Println("Run 'onet play --level <n>' to start at a level.")
}
