// forestrun is a side-scrolling forest runner for the terminal.
//
// Usage:
//
//	forestrun list              - List available forests
//	forestrun play <forest>     - Play a forest directly
//	forestrun menu              - Pick forests interactively
//	forestrun serve             - Start SSH server for remote play
//	forestrun sim <forest>      - Run headless autopilot runs
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--config <path>       - Custom runner.yaml
//	--difficulty <name>   - easy, normal, hard or fixed
//	--dev                 - Start with developer mode on
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/forest-run/internal/core"
	"github.com/vovakirdan/forest-run/internal/games/runner"
	"github.com/vovakirdan/forest-run/internal/logging"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagDev        bool
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "forestrun",
	Short: "Forest Run - dodge the beds, outrun the giant",
	Long: `Forest Run is a side-scrolling runner for your terminal. Jump over
beds, dodge the miniboss pack and the giant bed, grab the mushroom and
make it through the night forest.

Available commands:
  list     - Show all forests
  play     - Play a forest directly
  menu     - Interactive forest picker with run history
  serve    - Start SSH server for remote play
  sim      - Headless autopilot runs

Examples:
  forestrun list
  forestrun play forest-night
  forestrun menu --difficulty hard
  forestrun serve --ssh :2222
  forestrun sim forest --runs 20 --seed 7`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		runner.SetConfigPath(flagConfig)
		runner.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagDev, "dev", false, "Start with developer mode on")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", logging.DefaultFile(), "Log file used while the TUI owns the terminal")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// runtimeConfig builds the runtime config for a terminal of the given size.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// fileLogger opens the rotating log file used by the interactive commands.
func fileLogger() (*logging.Logger, error) {
	return logging.New(logging.Options{
		Prefix: "forestrun",
		Level:  flagLogLevel,
		File:   flagLogFile,
	})
}

// stderrLogger builds the logger for commands that keep the terminal.
func stderrLogger(prefix string) (*logging.Logger, error) {
	return logging.New(logging.Options{
		Prefix: prefix,
		Level:  flagLogLevel,
	})
}
