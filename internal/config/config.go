// Package config provides YAML-based game configuration loading and
// difficulty management for the gemfall platform.
package config

// Match3Config contains all tunable parameters for the match-3 game.
type Match3Config struct {
	Board   BoardConfig   `yaml:"board"`
	Scoring ScoringConfig `yaml:"scoring"`
	Timing  TimingConfig  `yaml:"timing"`
}

// BoardConfig defines the grid used in endless mode (campaign levels carry
// their own dimensions).
type BoardConfig struct {
	Rows      int `yaml:"rows"`
	Cols      int `yaml:"cols"`
	CellTypes int `yaml:"cell_types"`
}

// ScoringConfig defines how cleared cells translate into points.
type ScoringConfig struct {
	CellPoints   int `yaml:"cell_points"`   // Points per cleared cell
	CascadeBonus int `yaml:"cascade_bonus"` // Extra points per cell per chain step
}

// TimingConfig defines how many ticks each cascade phase takes, so clears
// and drops are visible rather than instantaneous.
type TimingConfig struct {
	ClearTicks int `yaml:"clear_ticks"`
	DropTicks  int `yaml:"drop_ticks"`
	FillTicks  int `yaml:"fill_ticks"`
}

// DefaultMatch3Config returns the default match-3 configuration, used when no
// YAML config can be loaded at all.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Rows:      9,
			Cols:      9,
			CellTypes: 6,
		},
		Scoring: ScoringConfig{
			CellPoints:   10,
			CascadeBonus: 5,
		},
		Timing: TimingConfig{
			ClearTicks: 12,
			DropTicks:  8,
			FillTicks:  8,
		},
	}
}
