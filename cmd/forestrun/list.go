package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/forest-run/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all forests",
	Long:  `Shows every runner variant registered in Forest Run.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No forests available.")
		return
	}

	bold := color.New(color.Bold)
	id := color.New(color.FgGreen)

	bold.Println("Available forests:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %s  %s\n", id.Sprintf("%-*s", maxIDLen, g.ID), g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'forestrun play <id>' to play.")
}
