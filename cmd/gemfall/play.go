package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkotenko/gemfall/internal/core"
	"github.com/dkotenko/gemfall/internal/games/match3"
	"github.com/dkotenko/gemfall/internal/platform/tui"
	"github.com/dkotenko/gemfall/internal/registry"
	"github.com/dkotenko/gemfall/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagEndless    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Gemfall",
	Long: `Start the game.

Controls:
  Arrows/WASD  - Move cursor (or swap when a gem is selected)
  Enter/Space  - Select/deselect a gem
  B/Esc        - Cancel selection
  P            - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - One fewer gem type, matches come easier
  normal - Config values as-is
  hard   - One extra gem type, tighter boards
  fixed  - No adjustments, plain config values

Examples:
  gemfall play
  gemfall play --endless
  gemfall play --level 5
  gemfall play --difficulty hard --seed 42
  gemfall play --config ./my-board.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start from (1-10)")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play endless mode (no levels, no move budget)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "match3"
	if flagEndless {
		gameID = "match3_endless"
	}

	// Terminal size for the initial screen buffer
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	match3.SetConfigPath(flagConfig)
	match3.SetDifficultyPreset(flagDifficulty)
	if flagLevel > 0 {
		match3.SetStartLevel(flagLevel)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
