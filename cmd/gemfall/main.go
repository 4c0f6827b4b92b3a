// gemfall is a terminal match-3 puzzle game.
//
// Usage:
//
//	gemfall play             - Play the campaign
//	gemfall play --endless   - Play endless mode
//	gemfall scores           - Browse high scores interactively
//	gemfall solve            - Run the greedy headless solver
//	gemfall replay <id>      - Re-simulate a stored replay
//	gemfall serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.gemfall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/dkotenko/gemfall/internal/games/match3"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gemfall",
	Short: "Gemfall - A match-3 puzzle game for your terminal",
	Long: `Gemfall is a terminal match-3 game: swap adjacent gems to line up
three or more of a kind, chain cascades for bonus points, and clear the
campaign within each level's move budget.

Available commands:
  play     - Play the campaign or endless mode
  scores   - View high scores
  solve    - Run the greedy headless solver
  replay   - Re-simulate a stored replay
  serve    - Start SSH server for remote play

Examples:
  gemfall play
  gemfall play --endless --seed 42
  gemfall scores match3
  gemfall solve --moves 30
  gemfall serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gemfall/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(serveCmd)
}
