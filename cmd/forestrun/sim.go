package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/forest-run/internal/core"
	"github.com/vovakirdan/forest-run/internal/games/runner"
	"github.com/vovakirdan/forest-run/internal/storage"
)

var (
	flagRuns     int
	flagMaxTicks int
)

var simCmd = &cobra.Command{
	Use:   "sim <forest>",
	Short: "Run headless autopilot runs",
	Long: `Plays the forest without a terminal UI. An autopilot jumps over
whatever comes close and steps away from falling branches. Each run uses
its own seed (--seed plus the run index), so a seeded batch is
reproducible.

Examples:
  forestrun sim forest
  forestrun sim forest-night --runs 50 --seed 7
  forestrun sim forest --difficulty hard --max-ticks 20000`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 10, "Number of runs")
	simCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 60*60*5, "Frame limit per run")
}

func runSim(_ *cobra.Command, args []string) {
	gameID := args[0]

	logger, err := stderrLogger("forestrun-sim")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.OpenMemory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	baseSeed := flagSeed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	won := color.New(color.FgGreen, color.Bold)
	lost := color.New(color.FgRed)
	dim := color.New(color.Faint)

	for i := range flagRuns {
		clock := runner.NewTickClock(flagFPS)
		g, err := runner.Variant(gameID, runner.WithClock(clock.Now))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'forestrun list' to see available forests.")
			os.Exit(1)
		}

		seed := baseSeed + int64(i)
		rc := runtimeConfig(80, 24)
		rc.Seed = seed
		g.Reset(rc)
		if flagDev {
			g.SetDeveloperMode(true)
		}

		res := runner.Play(g, runner.NewAutopilot(), clock, flagMaxTicks)
		saveEvents(store, gameID, res.Events, flagDev)
		logger.Debug("run finished", "seed", seed, "phase", res.Phase, "score", res.Score, "ticks", res.Ticks)

		line := fmt.Sprintf("run %3d  seed %-20d level %d  score %5d  ticks %6d", i+1, seed, res.Level, res.Score, res.Ticks)
		switch res.Phase {
		case core.PhaseWon:
			won.Printf("%s  cleared\n", line)
		case core.PhaseLost:
			lost.Printf("%s  lost: %s\n", line, res.LossReason)
		default:
			dim.Printf("%s  out of ticks\n", line)
		}
	}

	printSummary(store, gameID)
}

// saveEvents records a run for every level that ended.
func saveEvents(store *storage.Store, gameID string, events []core.Event, dev bool) {
	for _, ev := range events {
		rec := storage.RunRecord{GameID: gameID, Score: ev.Score, Level: ev.Level, DevMode: dev}
		switch ev.Kind {
		case core.EventWon:
			rec.Outcome = storage.OutcomeWon
		case core.EventLost:
			rec.Outcome = storage.OutcomeLost
			rec.LossReason = ev.Detail
		default:
			continue
		}
		if _, err := store.SaveRun(rec); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
}

func printSummary(store *storage.Store, gameID string) {
	stats, err := store.Stats(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	bold := color.New(color.Bold)
	fmt.Println()
	bold.Println("Summary")
	fmt.Printf("  levels finished  %d\n", stats.Runs)
	fmt.Printf("  levels cleared   %d\n", stats.Wins)
	fmt.Printf("  best score       %s\n", color.YellowString("%d", stats.HighScore))
	fmt.Printf("  average score    %.1f\n", stats.AvgScore)

	top, err := store.TopRuns(gameID, 3)
	if err != nil || len(top) == 0 {
		return
	}
	fmt.Println()
	bold.Println("Top runs")
	for i, r := range top {
		fmt.Printf("  #%d  %5d  level %d  %s\n", i+1, r.Score, r.Level, r.Outcome)
	}
}
