package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/forest-run/internal/platform/tui"
	"github.com/vovakirdan/forest-run/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a forest interactively",
	Long: `Opens the forest picker. Runs finished in this session are kept in
memory and shown on the run history board (Tab).`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, err := fileLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("run history disabled", "err", err)
		store = nil
	}

	width, height := terminalSize()
	runErr := tui.RunSession(runtimeConfig(width, height), tui.Options{
		Store:   store,
		Logger:  logger.Logger,
		DevMode: flagDev,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
