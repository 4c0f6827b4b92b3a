// Package match3 implements the gem-swapping puzzle game with campaign and
// endless modes. The simulation core lives in internal/board; this package is
// the driver that owns the cursor, the cascade loop, scoring, and levels.
package match3

// Level defines a campaign level: the board it is played on, the score to
// reach, and the move budget to reach it within.
type Level struct {
	ID          int
	Name        string
	Rows        int
	Cols        int
	CellTypes   int
	TargetScore int
	MoveBudget  int
}

// Levels defines the 10 campaign levels. Boards grow and gain tile types
// while budgets tighten, so later levels need deliberate cascade play.
var Levels = []Level{
	{ID: 1, Name: "First Sparks", Rows: 7, Cols: 7, CellTypes: 4, TargetScore: 600, MoveBudget: 20},
	{ID: 2, Name: "Warming Up", Rows: 7, Cols: 7, CellTypes: 4, TargetScore: 1000, MoveBudget: 22},
	{ID: 3, Name: "Five Colors", Rows: 8, Cols: 8, CellTypes: 5, TargetScore: 1200, MoveBudget: 22},
	{ID: 4, Name: "Wider Field", Rows: 8, Cols: 8, CellTypes: 5, TargetScore: 1800, MoveBudget: 24},
	{ID: 5, Name: "Chain Reaction", Rows: 8, Cols: 8, CellTypes: 5, TargetScore: 2400, MoveBudget: 24},
	{ID: 6, Name: "Full Spectrum", Rows: 9, Cols: 9, CellTypes: 6, TargetScore: 2600, MoveBudget: 26},
	{ID: 7, Name: "Tight Budget", Rows: 9, Cols: 9, CellTypes: 6, TargetScore: 3200, MoveBudget: 24},
	{ID: 8, Name: "Deep Cascades", Rows: 9, Cols: 9, CellTypes: 6, TargetScore: 4000, MoveBudget: 26},
	{ID: 9, Name: "Master Swapper", Rows: 10, Cols: 10, CellTypes: 7, TargetScore: 4500, MoveBudget: 26},
	{ID: 10, Name: "Gemfall", Rows: 10, Cols: 10, CellTypes: 7, TargetScore: 6000, MoveBudget: 30},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at the given index (0-based).
// Returns nil if index is out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, lvl := range Levels {
		names[i] = lvl.Name
	}
	return names
}
