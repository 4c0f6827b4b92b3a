package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dkotenko/gemfall/internal/board"
	"github.com/dkotenko/gemfall/internal/config"
)

var (
	flagSolveRows    int
	flagSolveCols    int
	flagSolveTypes   int
	flagSolveMoves   int
	flagSolveVerbose bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run the greedy headless solver",
	Long: `Play the board without a UI: enumerate every possible swap, greedily
pick the one that clears the most cells, resolve the cascade, and repeat
until the move limit is reached or the board goes dead.

Board dimensions default to the game config; override them with flags.

Examples:
  gemfall solve
  gemfall solve --moves 100 --seed 42
  gemfall solve --rows 12 --cols 12 --types 5 --verbose`,
	Args: cobra.NoArgs,
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&flagSolveRows, "rows", 0, "Board rows (0 = from config)")
	solveCmd.Flags().IntVar(&flagSolveCols, "cols", 0, "Board columns (0 = from config)")
	solveCmd.Flags().IntVar(&flagSolveTypes, "types", 0, "Gem types (0 = from config)")
	solveCmd.Flags().IntVar(&flagSolveMoves, "moves", 50, "Maximum number of moves to play")
	solveCmd.Flags().BoolVar(&flagSolveVerbose, "verbose", false, "Print every move")
}

func runSolve(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadMatch3("")
	if err != nil {
		cfg = config.DefaultMatch3Config()
	}

	rows, cols, types := cfg.Board.Rows, cfg.Board.Cols, cfg.Board.CellTypes
	if flagSolveRows > 0 {
		rows = flagSolveRows
	}
	if flagSolveCols > 0 {
		cols = flagSolveCols
	}
	if flagSolveTypes > 0 {
		types = flagSolveTypes
	}
	if rows < 1 || cols < 1 || types < 1 {
		fmt.Fprintln(os.Stderr, "Error: rows, cols and types must be positive")
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	b := board.New(rows, cols, types, seed)
	settleBoard(b)

	fmt.Printf("Solving %dx%d board, %d gem types, seed %d\n\n", rows, cols, types, seed)

	score := 0
	totalCleared := 0
	deepestChain := 0
	movesPlayed := 0

	for movesPlayed < flagSolveMoves {
		best, bestCells := bestMove(b)
		if bestCells == 0 {
			fmt.Println("Board is dead: no swap produces a match.")
			break
		}

		if !b.MakeMove(best) {
			// TrialMove said this swap matches; MakeMove must agree.
			panic("solver: best move rejected by the board")
		}
		movesPlayed++

		cleared, chain, gained := resolveCascade(b, cfg)
		score += gained
		totalCleared += cleared
		if chain > deepestChain {
			deepestChain = chain
		}

		if flagSolveVerbose {
			fmt.Printf("move %3d: edge %4d cleared %3d cells (chain %d)  score %d\n",
				movesPlayed, best.EdgeIndex(), cleared, chain, score)
		}
	}

	fmt.Println()
	fmt.Printf("Moves played:   %d\n", movesPlayed)
	fmt.Printf("Cells cleared:  %d\n", totalCleared)
	fmt.Printf("Deepest chain:  %d\n", deepestChain)
	fmt.Printf("Final score:    %d\n", score)
}

// bestMove returns the swap that clears the most cells, or a zero count when
// the board is dead. Ties go to the lowest edge index so runs are reproducible.
func bestMove(b *board.Board) (board.Move, int) {
	var best board.Move
	bestCells := 0

	for edge := 0; edge < b.NumEdges(); edge++ {
		m, err := board.NewMoveFromEdgeIndex(edge, b.Rows(), b.Cols())
		if err != nil {
			panic(err)
		}
		if cells := b.TrialMove(m); cells > bestCells {
			best = m
			bestCells = cells
		}
	}

	return best, bestCells
}

// resolveCascade runs the clear/drop/fill loop until the board is quiet and
// returns cells cleared, chain depth, and points gained.
func resolveCascade(b *board.Board, cfg config.Match3Config) (cleared, chain, score int) {
	for b.MatchedCount() > 0 {
		chain++
		cells := b.MatchedCount()
		cleared += cells
		score += cells * (cfg.Scoring.CellPoints + cfg.Scoring.CascadeBonus*(chain-1))

		b.ClearMatchedCells()
		b.DropCells()
		b.FillFromAbove()
		b.MarkMatchedCells()
	}
	return cleared, chain, score
}

// settleBoard clears matches left by the initial random fill without scoring.
func settleBoard(b *board.Board) {
	for b.MatchedCount() > 0 {
		b.ClearMatchedCells()
		b.DropCells()
		b.FillFromAbove()
		b.MarkMatchedCells()
	}
}
