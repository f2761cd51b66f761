package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rollcube/internal/core"
	"github.com/vovakirdan/rollcube/internal/platform/tui"
	"github.com/vovakirdan/rollcube/internal/registry"
	"github.com/vovakirdan/rollcube/internal/rollcube"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Quit a game to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Results
  Q            - Quit

Examples:
  rollcube menu
  rollcube menu --fps 30
  rollcube menu --db ./results.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openResults()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}

		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if goBack {
				continue
			}
			break
		}

		if menuResult.GameID == "" {
			break
		}

		if flagDifficulty == "" {
			if !pickDifficulty(menuResult.GameID, cfg) {
				continue
			}
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh board for each game unless a seed was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, logger, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	return nil
}

// pickDifficulty shows the difficulty picker for a variant and applies the
// choice to the next created game. It returns false to go back to the menu.
func pickDifficulty(gameID string, cfg core.RuntimeConfig) bool {
	v, ok := rollcube.VariantByID(gameID)
	if !ok {
		return true
	}

	base, err := rollcube.LoadVariantConfig(v, flagConfig, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return false
	}

	preset, ok, err := tui.RunDifficultySelector(v.Title, base, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return false
	}
	if !ok {
		return false
	}

	rollcube.SetDifficultyPreset(preset)
	logger.Debug("difficulty selected", "game", gameID, "preset", preset)
	return true
}
