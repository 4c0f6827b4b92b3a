package match3

import (
	"github.com/dkotenko/gemfall/internal/board"
	"github.com/dkotenko/gemfall/internal/config"
	"github.com/dkotenko/gemfall/internal/core"
	"github.com/dkotenko/gemfall/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// phase tracks where the cascade resolution currently is. The board exposes
// single-step primitives; the game spreads them over ticks so clears and
// drops are visible.
type phase int

const (
	phaseIdle phase = iota
	phaseClearing
	phaseDropping
	phaseFilling
)

// Game implements the match-3 game on top of the board core.
type Game struct {
	mode Mode
	cfg  config.Match3Config
	b    *board.Board
	tick uint64
	seed int64

	score      int
	levelIndex int
	movesLeft  int
	target     int

	// Cursor and selection
	cursorRow int
	cursorCol int
	anchored  bool
	anchorRow int
	anchorCol int

	// Cascade state
	phase      phase
	phaseTicks int
	chain      int

	// Applied moves as edge indices, for replay persistence
	moves []int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver        bool
	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	noMoves         bool // Game ended because the board went dead
	levelClearTicks int
}

// Package-level variables for config/difficulty (shared with the CLI).
var (
	configPath         string
	difficultyPreset   string
	selectedStartLevel int
)

// SetConfigPath sets the config file path used at the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied at the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting level (1-10). 0 means start from beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// New creates a new campaign mode game.
func New() *Game {
	return &Game{
		mode: ModeCampaign,
	}
}

// NewEndless creates a new endless mode game.
func NewEndless() *Game {
	return &Game{
		mode: ModeEndless,
	}
}

func init() {
	registry.Register("match3", func() registry.Game {
		return New()
	})
	registry.Register("match3_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "match3_endless"
	}
	return "match3"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Gemfall (Endless)"
	}
	return "Gemfall"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadMatch3(configPath)
	if err != nil {
		loaded = config.DefaultMatch3Config()
	}
	config.ApplyMatch3Preset(&loaded, config.DifficultyPreset(difficultyPreset))
	g.cfg = loaded

	g.tick = 0
	g.seed = cfg.Seed
	g.score = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.noMoves = false
	g.anchored = false
	g.phase = phaseIdle
	g.phaseTicks = 0
	g.chain = 0
	g.moves = nil
	g.levelClearTicks = 0

	if g.mode == ModeCampaign && selectedStartLevel > 0 && selectedStartLevel <= LevelCount() {
		g.levelIndex = selectedStartLevel - 1
		selectedStartLevel = 0 // Reset after use
	} else {
		g.levelIndex = 0
	}

	g.loadLevel()
}

// loadLevel builds the board for the current level (or the configured board
// in endless mode) and settles any matches present in the initial fill
// without scoring them.
func (g *Game) loadLevel() {
	rows := g.cfg.Board.Rows
	cols := g.cfg.Board.Cols
	types := g.cfg.Board.CellTypes
	g.target = 0
	g.movesLeft = 0

	if g.mode == ModeCampaign {
		level := GetLevel(g.levelIndex)
		if level == nil {
			level = GetLevel(LevelCount() - 1)
		}
		rows = level.Rows
		cols = level.Cols
		types = level.CellTypes
		g.target = level.TargetScore
		g.movesLeft = level.MoveBudget
	}

	g.b = board.New(rows, cols, types, g.seed+int64(g.levelIndex))
	g.settleInitialBoard()

	g.cursorRow = rows / 2
	g.cursorCol = cols / 2
	g.anchored = false
	g.phase = phaseIdle
	g.chain = 0
	g.checkScreenSize()
}

// settleInitialBoard resolves matches left by the random fill so play starts
// on a quiet board. No points are awarded for these.
func (g *Game) settleInitialBoard() {
	for g.b.MatchedCount() > 0 {
		g.b.ClearMatchedCells()
		g.b.DropCells()
		g.b.FillFromAbove()
		g.b.MarkMatchedCells()
	}
}

// Board exposes the underlying board for rendering and tests.
func (g *Game) Board() *board.Board {
	return g.b
}

// AppliedMoves returns the edge indices of all committed swaps, in order.
func (g *Game) AppliedMoves() []int {
	out := make([]int, len(g.moves))
	copy(out, g.moves)
	return out
}

// Seed returns the RNG seed the current run was started with.
func (g *Game) Seed() int64 {
	return g.seed
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	minW := g.b.Cols()*2 + 3
	minH := g.b.Rows() + 6
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Restart is handled by the platform; nothing to simulate after the end.
	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.levelClearTicks++
		// Auto-advance after 2 seconds (120 ticks at 60fps)
		if g.levelClearTicks >= 120 {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if g.phase != phaseIdle {
		g.stepCascade()
		return core.StepResult{State: g.State()}
	}

	g.processInput(in)
	return core.StepResult{State: g.State()}
}

// processInput handles cursor movement and swap selection while the board
// is quiet.
func (g *Game) processInput(in core.InputFrame) {
	if in.Has(core.ActionBack) {
		g.anchored = false
		return
	}

	if in.Has(core.ActionConfirm) {
		if g.anchored && g.anchorRow == g.cursorRow && g.anchorCol == g.cursorCol {
			g.anchored = false
		} else {
			g.anchored = true
			g.anchorRow = g.cursorRow
			g.anchorCol = g.cursorCol
		}
		return
	}

	var dir board.Direction
	hasDir := true
	switch {
	case in.Has(core.ActionUp):
		// Row 0 renders at the bottom of the screen, so the visual "up"
		// key moves toward higher row indices.
		dir = board.DirDown
	case in.Has(core.ActionDown):
		dir = board.DirUp
	case in.Has(core.ActionLeft):
		dir = board.DirLeft
	case in.Has(core.ActionRight):
		dir = board.DirRight
	default:
		hasDir = false
	}
	if !hasDir {
		return
	}

	if g.anchored {
		g.trySwap(dir)
		return
	}

	dRow, dCol := dir.Delta()
	g.cursorRow = core.Clamp(g.cursorRow+dRow, 0, g.b.Rows()-1)
	g.cursorCol = core.Clamp(g.cursorCol+dCol, 0, g.b.Cols()-1)
}

// trySwap attempts to swap the anchored cell with its neighbor in the given
// direction. The anchor is released either way.
func (g *Game) trySwap(dir board.Direction) {
	g.anchored = false

	row, col := g.anchorRow, g.anchorCol
	dRow, dCol := dir.Delta()
	nRow, nCol := row+dRow, col+dCol
	if nRow < 0 || nRow >= g.b.Rows() || nCol < 0 || nCol >= g.b.Cols() {
		return
	}

	m := board.NewMove(row, col, dir, g.b.Rows(), g.b.Cols())
	if !g.b.IsMoveValid(m) {
		return
	}

	g.applyMove(m)
}

// applyMove commits a move if it produces a match and starts the cascade.
func (g *Game) applyMove(m board.Move) bool {
	if !g.b.MakeMove(m) {
		return false
	}

	g.moves = append(g.moves, m.EdgeIndex())
	if g.mode == ModeCampaign {
		g.movesLeft--
	}

	g.chain = 1
	g.score += g.matchPoints()
	g.phase = phaseClearing
	g.phaseTicks = 0
	return true
}

// matchPoints scores the currently flagged cells at the current chain depth.
func (g *Game) matchPoints() int {
	perCell := g.cfg.Scoring.CellPoints + g.cfg.Scoring.CascadeBonus*(g.chain-1)
	return g.b.MatchedCount() * perCell
}

// stepCascade advances the clear/drop/fill pipeline one tick at a time.
func (g *Game) stepCascade() {
	g.phaseTicks++

	switch g.phase {
	case phaseClearing:
		if g.phaseTicks >= g.cfg.Timing.ClearTicks {
			g.b.ClearMatchedCells()
			g.phase = phaseDropping
			g.phaseTicks = 0
		}
	case phaseDropping:
		if g.phaseTicks >= g.cfg.Timing.DropTicks {
			g.b.DropCells()
			g.phase = phaseFilling
			g.phaseTicks = 0
		}
	case phaseFilling:
		if g.phaseTicks >= g.cfg.Timing.FillTicks {
			g.b.FillFromAbove()
			if g.b.MarkMatchedCells() {
				// The refill produced a new match: deeper chain, more points.
				g.chain++
				g.score += g.matchPoints()
				g.phase = phaseClearing
			} else {
				g.phase = phaseIdle
				g.chain = 0
				g.afterCascade()
			}
			g.phaseTicks = 0
		}
	case phaseIdle:
		// Nothing to do.
	}
}

// afterCascade checks level completion and end conditions once the board is
// quiet again.
func (g *Game) afterCascade() {
	if g.mode == ModeCampaign {
		if g.target > 0 && g.score >= g.target {
			g.levelCleared = true
			g.levelClearTicks = 0
			return
		}
		if g.movesLeft <= 0 {
			g.gameOver = true
			return
		}
	}

	if !g.b.HasAvailableMove() {
		g.noMoves = true
		g.gameOver = true
	}
}

// advanceLevel moves to the next level.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= LevelCount()-1 {
		g.won = true
		return
	}

	g.levelIndex++
	g.loadLevel()
	// Score carries across levels; the budget and board do not.
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}
