package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkotenko/gemfall/internal/platform/tui"
	"github.com/dkotenko/gemfall/internal/registry"
	"github.com/dkotenko/gemfall/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display high scores.

Without arguments, opens the interactive scoreboard browser.
With a game ID (match3, match3_endless), prints the top 10 to stdout.

Examples:
  gemfall scores
  gemfall scores match3
  gemfall scores match3_endless`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		runScoreboardTUI()
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Valid games: match3, match3_endless")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'gemfall play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if highScore, hsErr := store.HighScore(gameID); hsErr == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

// runScoreboardTUI opens the interactive bubbles-table scoreboard.
func runScoreboardTUI() {
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		os.Exit(1)
	}
}
