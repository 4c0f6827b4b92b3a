package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "match3", "match3_endless":
		return defaultMatch3YAML
	default:
		return nil
	}
}
