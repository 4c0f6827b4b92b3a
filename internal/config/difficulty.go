package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyMatch3Preset adjusts the config for a difficulty preset. Fewer cell
// types means more frequent matches; more types means a tighter board.
func ApplyMatch3Preset(cfg *Match3Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		if cfg.Board.CellTypes > 4 {
			cfg.Board.CellTypes--
		}
	case DifficultyHard:
		cfg.Board.CellTypes++
	case DifficultyNormal, DifficultyFixed:
		// Keep the configured values.
	}
}
