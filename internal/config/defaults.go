package config

import (
	_ "embed"
)

//go:embed defaults/rollcube.yaml
var defaultRollCubeYAML []byte

// DefaultRollCubeConfig returns the built-in configuration.
// It mirrors defaults/rollcube.yaml and is used if the embedded file fails to parse.
func DefaultRollCubeConfig() RollCubeConfig {
	return RollCubeConfig{
		Grid: GridConfig{
			Size:    8,
			Colours: 1,
		},
		Roll: RollConfig{
			Speed:    25,
			MinSpeed: 1,
			MaxSpeed: 120,
		},
		Rules: RulesConfig{
			MoveLimit: 0,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRollCubeYAML
}
