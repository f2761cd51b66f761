package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultRollCubeConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultRollCubeConfig())
	}
}

func TestLoadRollCubeFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadRollCube("")
	if err != nil {
		t.Fatalf("LoadRollCube() failed: %v", err)
	}
	if cfg.Grid.Size != 8 || cfg.Roll.Speed != 25 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadRollCubeCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  size: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRollCube(path)
	if err != nil {
		t.Fatalf("LoadRollCube() failed: %v", err)
	}
	if cfg.Grid.Size != 7 {
		t.Errorf("Grid.Size = %d, expected 7", cfg.Grid.Size)
	}
	// Unnamed fields keep their defaults
	if cfg.Grid.Colours != 1 || cfg.Roll.Speed != 25 || cfg.Roll.MaxSpeed != 120 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadRollCubeCustomPathErrors(t *testing.T) {
	if _, err := LoadRollCube(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRollCube(path); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RollCubeConfig)
		valid  bool
	}{
		{"defaults", func(*RollCubeConfig) {}, true},
		{"odd grid", func(c *RollCubeConfig) { c.Grid.Size = 7 }, true},
		{"single tile", func(c *RollCubeConfig) { c.Grid.Size = 1 }, true},
		{"zero grid", func(c *RollCubeConfig) { c.Grid.Size = 0 }, false},
		{"negative grid", func(c *RollCubeConfig) { c.Grid.Size = -3 }, false},
		{"zero speed", func(c *RollCubeConfig) { c.Roll.Speed = 0 }, false},
		{"negative speed", func(c *RollCubeConfig) { c.Roll.Speed = -1 }, false},
		{"zero colours", func(c *RollCubeConfig) { c.Grid.Colours = 0 }, false},
		{"zero min speed", func(c *RollCubeConfig) { c.Roll.MinSpeed = 0 }, false},
		{"max below min", func(c *RollCubeConfig) { c.Roll.MaxSpeed = 0 }, false},
		{"negative move limit", func(c *RollCubeConfig) { c.Rules.MoveLimit = -1 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRollCubeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestMoveLimit(t *testing.T) {
	cfg := DefaultRollCubeConfig()
	cfg.Grid.Size = 7
	if got := cfg.MoveLimit(); got != 98 {
		t.Errorf("MoveLimit() = %d, expected 98 for a 7x7 grid", got)
	}

	cfg.Rules.MoveLimit = 40
	if got := cfg.MoveLimit(); got != 40 {
		t.Errorf("MoveLimit() = %d, expected configured 40", got)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultRollCubeConfig()
	cfg.Grid.Colours = 8

	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Grid.Size != 5 || cfg.MoveLimit() != 50 {
		t.Errorf("easy preset: %+v", cfg)
	}

	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Grid.Size != 10 || cfg.MoveLimit() != 100 {
		t.Errorf("hard preset: size=%d limit=%d", cfg.Grid.Size, cfg.MoveLimit())
	}
	if cfg.Grid.Colours != 8 {
		t.Error("presets must not change colour count")
	}

	before := cfg
	ApplyPreset(&cfg, "")
	if cfg != before {
		t.Error("empty preset must be a no-op")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("fixed"); err == nil {
		t.Error("ParsePreset(\"fixed\") should fail")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("ROLLCUBE_GRID_SIZE", "7")
	t.Setenv("ROLLCUBE_ROLL_SPEED", "10")

	cfg := DefaultRollCubeConfig()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv() failed: %v", err)
	}
	if cfg.Grid.Size != 7 || cfg.Roll.Speed != 10 {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
	if cfg.Grid.Colours != 1 {
		t.Errorf("unset variables must not override: colours=%d", cfg.Grid.Colours)
	}
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	t.Setenv("ROLLCUBE_GRID_SIZE", "eight")

	cfg := DefaultRollCubeConfig()
	if err := ApplyEnv(&cfg); err == nil {
		t.Error("expected error for non-numeric ROLLCUBE_GRID_SIZE")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("ROLLCUBE_COLOURS=3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ROLLCUBE_COLOURS", "")
	os.Unsetenv("ROLLCUBE_COLOURS")

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("LoadDotEnv() failed: %v", err)
	}

	cfg := DefaultRollCubeConfig()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv() failed: %v", err)
	}
	if cfg.Grid.Colours != 3 {
		t.Errorf("Grid.Colours = %d, expected 3 from .env", cfg.Grid.Colours)
	}
}
