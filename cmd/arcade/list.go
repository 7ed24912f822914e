package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/entity-arcade/internal/core"
	"github.com/vovakirdan/entity-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade with their viewport sizes.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-9s  %s\n", maxIDLen, "ID", "Viewport", "Title")
	fmt.Printf("  %-*s  %-9s  %s\n", maxIDLen, "--", "--------", "-----")

	for _, g := range games {
		size := "?"
		if game, err := registry.Create(g.ID, core.DefaultConfig()); err == nil {
			w, h := game.Size()
			size = fmt.Sprintf("%dx%d", w, h)
			game.Shutdown()
		}
		fmt.Printf("  %-*s  %-9s  %s\n", maxIDLen, g.ID, size, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
