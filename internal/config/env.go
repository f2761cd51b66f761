package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ROLLCUBE_"

// envOverrides holds values read from ROLLCUBE_* variables.
// Zero means "not set".
type envOverrides struct {
	GridSize  int `env:"GRID_SIZE"`
	Colours   int `env:"COLOURS"`
	RollSpeed int `env:"ROLL_SPEED"`
	MoveLimit int `env:"MOVE_LIMIT"`
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are ignored; existing variables win.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overlays ROLLCUBE_* environment variables onto cfg.
func ApplyEnv(cfg *RollCubeConfig) error {
	var o envOverrides
	if err := env.ParseWithOptions(&o, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if o.GridSize != 0 {
		cfg.Grid.Size = o.GridSize
	}
	if o.Colours != 0 {
		cfg.Grid.Colours = o.Colours
	}
	if o.RollSpeed != 0 {
		cfg.Roll.Speed = o.RollSpeed
	}
	if o.MoveLimit != 0 {
		cfg.Rules.MoveLimit = o.MoveLimit
	}
	return nil
}
