package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/forest-run/internal/platform/tui"
	"github.com/vovakirdan/forest-run/internal/registry"
	"github.com/vovakirdan/forest-run/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <forest>",
	Short: "Play a forest",
	Long: `Start running the specified forest.

Controls:
  ←/→ or A/D   - Move
  Space/↑/W    - Jump (press again in the air to double jump at night)
  Enter        - Start, begin a level
  N            - Next level (after a short pause once a level is won)
  R            - Restart
  !            - Enter developer code (outside a run)
  Ctrl+S       - Save a text screenshot
  Esc/B        - Leave (outside a run)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Every tier one step slower
  normal - The config's own tiers
  hard   - Every tier one step faster
  fixed  - No speed-up, each level stays at its first tier

Examples:
  forestrun play forest
  forestrun play forest-night --difficulty hard
  forestrun play forest --config ./my-runner.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown forest %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'forestrun list' to see available forests.")
		os.Exit(1)
	}

	width, height := terminalSize()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating forest: %v\n", err)
		os.Exit(1)
	}

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

	runErr := tui.Run(game, runtimeConfig(width, height), tui.Options{
		Store:   store,
		Logger:  logger.Logger,
		DevMode: flagDev,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running forest: %v\n", runErr)
		os.Exit(1)
	}
}

// terminalSize reports the size of stdout, falling back to 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
