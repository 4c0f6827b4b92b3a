package match3

// GameStateType represents the current game state for snapshots.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateCascading    GameStateType = "cascading"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and
// replay verification.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Level     int // 1-indexed for display, 0 in endless mode
	Target    int
	Score     int
	MovesLeft int
	Chain     int
	CursorRow int
	CursorCol int
	Cells     [][]int
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.phase != phaseIdle:
		state = StateCascading
	}

	level := 0
	if g.mode == ModeCampaign {
		level = g.levelIndex + 1
	}

	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Level:     level,
		Target:    g.target,
		Score:     g.score,
		MovesLeft: g.movesLeft,
		Chain:     g.chain,
		CursorRow: g.cursorRow,
		CursorCol: g.cursorCol,
		Cells:     g.b.Snapshot(),
		State:     state,
	}
}
