// Package config provides YAML-based configuration loading, difficulty
// presets and environment overrides for rollcube.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) when a configuration cannot start a session.
var ErrInvalid = errors.New("invalid configuration")

// RollCubeConfig contains all tunable parameters for a rollcube session.
type RollCubeConfig struct {
	Grid  GridConfig  `yaml:"grid"`
	Roll  RollConfig  `yaml:"roll"`
	Rules RulesConfig `yaml:"rules"`
}

// GridConfig defines the board.
type GridConfig struct {
	Size    int `yaml:"size"`    // Side length of the square grid
	Colours int `yaml:"colours"` // Number of "on" colours a tile cycles through
}

// RollConfig defines the roll animation.
type RollConfig struct {
	Speed    int `yaml:"speed"`     // Frames per quarter turn
	MinSpeed int `yaml:"min_speed"` // Lower bound for runtime adjustment
	MaxSpeed int `yaml:"max_speed"` // Upper bound for runtime adjustment
}

// RulesConfig defines win/loss thresholds.
type RulesConfig struct {
	MoveLimit int `yaml:"move_limit"` // 0 selects DefaultMoveLimit(Grid.Size)
}

// DefaultMoveLimit is the move budget used when none is configured:
// two moves per tile.
func DefaultMoveLimit(gridSize int) int {
	return 2 * gridSize * gridSize
}

// MoveLimit returns the effective move budget.
func (c RollCubeConfig) MoveLimit() int {
	if c.Rules.MoveLimit > 0 {
		return c.Rules.MoveLimit
	}
	return DefaultMoveLimit(c.Grid.Size)
}

// Validate rejects configurations that cannot produce a playable session.
func (c RollCubeConfig) Validate() error {
	switch {
	case c.Grid.Size <= 0:
		return fmt.Errorf("%w: grid size must be positive, got %d", ErrInvalid, c.Grid.Size)
	case c.Grid.Colours <= 0:
		return fmt.Errorf("%w: colour count must be positive, got %d", ErrInvalid, c.Grid.Colours)
	case c.Roll.Speed <= 0:
		return fmt.Errorf("%w: roll speed must be positive, got %d", ErrInvalid, c.Roll.Speed)
	case c.Roll.MinSpeed <= 0:
		return fmt.Errorf("%w: min roll speed must be positive, got %d", ErrInvalid, c.Roll.MinSpeed)
	case c.Roll.MaxSpeed < c.Roll.MinSpeed:
		return fmt.Errorf("%w: max roll speed %d below min %d", ErrInvalid, c.Roll.MaxSpeed, c.Roll.MinSpeed)
	case c.Rules.MoveLimit < 0:
		return fmt.Errorf("%w: move limit must not be negative, got %d", ErrInvalid, c.Rules.MoveLimit)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}
