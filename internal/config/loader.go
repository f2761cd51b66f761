package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "rollcube.yaml"

// LoadRollCube loads the rollcube configuration.
// Search order: customPath -> ~/.rollcube/configs/rollcube.yaml -> ./configs/rollcube.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadRollCube(customPath string) (RollCubeConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RollCubeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return RollCubeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultRollCubeYAML)
	if err != nil {
		return DefaultRollCubeConfig(), nil
	}
	return cfg, nil
}

func parse(data []byte) (RollCubeConfig, error) {
	cfg := DefaultRollCubeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RollCubeConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rollcube", "configs", filename)
}

// ApplyPreset adjusts board size and move budget for a difficulty preset.
// Colour count is left alone; it is chosen by the game variant.
func ApplyPreset(cfg *RollCubeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Grid.Size = 5
		cfg.Rules.MoveLimit = 0
	case DifficultyNormal:
		cfg.Grid.Size = 8
		cfg.Rules.MoveLimit = 0
	case DifficultyHard:
		cfg.Grid.Size = 10
		cfg.Rules.MoveLimit = cfg.Grid.Size * cfg.Grid.Size
	}
}
